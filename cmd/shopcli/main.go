package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/storefront-client/internal/config"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/provider"
	"github.com/storefront-client/internal/service"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiRed   = "\033[31m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Client.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	// 初始化本地存储
	if err := models.InitDB(cfg.Storage.Path, models.DBPoolConfig{
		MaxOpenConns:           cfg.Storage.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Storage.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Storage.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Storage.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("本地存储初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("本地存储迁移失败: %v", err)
	}

	container, err := provider.NewContainer(cfg)
	if err != nil {
		stdLog.Fatalf("初始化失败: %v", err)
	}

	repl(container)
}

func repl(c *provider.Container) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(ansiDim + "输入 help 查看命令" + ansiReset)
	for {
		fmt.Print(ansiBold + "shop> " + ansiReset)
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		ctx, cancel := context.WithTimeout(context.Background(), c.Config.API.Timeout())
		switch cmd {
		case "help":
			printHelp()
		case "exit", "quit":
			cancel()
			return
		case "login":
			cmdLogin(ctx, c, args)
		case "register":
			cmdRegister(ctx, c, args)
		case "logout":
			fail(c.AuthService.Logout())
		case "me":
			cmdMe(ctx, c)
		case "products":
			cmdProducts(ctx, c)
		case "categories":
			cmdCategories(ctx, c)
		case "cart":
			cmdCart(c)
		case "add":
			cmdAdd(ctx, c, args)
		case "remove":
			if len(args) > 0 {
				c.CartService.RemoveByProductIDs(args...)
			}
		case "qty":
			cmdQty(c, args)
		case "select":
			cmdSelect(c, args)
		case "checkout":
			cmdCheckout(ctx, c, scanner)
		case "orders":
			cmdOrders(ctx, c)
		case "order":
			cmdOrder(ctx, c, args, scanner)
		case "reviews":
			cmdReviews(ctx, c, args)
		case "review":
			cmdReview(ctx, c, args)
		default:
			fmt.Println("未知命令:", cmd)
		}
		cancel()
	}
}

func printHelp() {
	fmt.Println(`login <email> <password>      登录
register <name> <email> <pw>  注册
logout                        退出登录
me                            当前用户
products / categories         浏览目录
cart                          查看购物车
add <productId>               加入购物车
remove <productId>...         按商品编号移除
qty <index> <n>               修改数量
select <index|all> <on|off>   选择
checkout                      结算选中的商品
orders                        历史订单
order <n>                     打开第 n 个订单进行编辑
reviews <productId>           商品评价与均分
review <productId> <rating> [message...]  发表评价
exit                          退出`)
}

func fail(err error) {
	if err != nil {
		fmt.Println(ansiRed + err.Error() + ansiReset)
	}
}

func cmdLogin(ctx context.Context, c *provider.Container, args []string) {
	if len(args) != 2 {
		fmt.Println("用法: login <email> <password>")
		return
	}
	if err := c.AuthService.Login(ctx, args[0], args[1]); err != nil {
		fail(err)
		return
	}
	fmt.Println(ansiGreen + "登录成功" + ansiReset)
}

func cmdRegister(ctx context.Context, c *provider.Container, args []string) {
	if len(args) != 3 {
		fmt.Println("用法: register <name> <email> <password>")
		return
	}
	if err := c.AuthService.Register(ctx, args[0], args[1], args[2]); err != nil {
		fail(err)
		return
	}
	fmt.Println(ansiGreen + "注册成功，请登录" + ansiReset)
}

func cmdMe(ctx context.Context, c *provider.Container) {
	user, err := c.AuthService.UserDetails(ctx)
	if err != nil {
		fail(err)
		return
	}
	fmt.Printf("%s <%s> 角色=%s 状态=%s\n", user.Name, user.Email, user.Role, user.Status)
}

func cmdProducts(ctx context.Context, c *provider.Container) {
	products, err := c.CatalogService.Products(ctx)
	if err != nil {
		fail(err)
		return
	}
	for _, p := range products {
		fmt.Printf("%-12s %-24s %8s  库存 %d\n", p.ID, p.Title, p.Price, p.StockCount)
	}
}

func cmdCategories(ctx context.Context, c *provider.Container) {
	categories, err := c.CatalogService.Categories(ctx)
	if err != nil {
		fail(err)
		return
	}
	for _, cat := range categories {
		fmt.Printf("%-12s %s\n", cat.ID, cat.Name)
	}
}

func cmdCart(c *provider.Container) {
	lines := c.CartService.Lines()
	if len(lines) == 0 {
		fmt.Println("购物车是空的")
		return
	}
	for i, line := range lines {
		mark := " "
		if line.Selected {
			mark = "*"
		}
		fmt.Printf("[%s] %d. %-24s x%d  %s\n", mark, i, line.Product.Title, line.Quantity, line.Product.Price.MulInt(line.Quantity))
	}
	fmt.Printf("选中合计: %s\n", c.CartService.Total())
}

func cmdAdd(ctx context.Context, c *provider.Container, args []string) {
	if len(args) != 1 {
		fmt.Println("用法: add <productId>")
		return
	}
	product, err := c.CatalogService.ProductByID(ctx, args[0])
	if err != nil {
		fail(err)
		return
	}
	c.CartService.Add(*product)
	fmt.Println(ansiGreen + "已加入购物车" + ansiReset)
}

func cmdQty(c *provider.Container, args []string) {
	if len(args) != 2 {
		fmt.Println("用法: qty <index> <n>")
		return
	}
	index, err1 := strconv.Atoi(args[0])
	qty, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("用法: qty <index> <n>")
		return
	}
	c.CartService.SetQuantity(index, qty)
}

func cmdSelect(c *provider.Container, args []string) {
	if len(args) != 2 {
		fmt.Println("用法: select <index|all> <on|off>")
		return
	}
	on := args[1] == "on"
	if args[0] == "all" {
		c.CartService.SelectAll(on)
		return
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("用法: select <index|all> <on|off>")
		return
	}
	c.CartService.ToggleSelection(index, on)
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func cmdCheckout(ctx context.Context, c *provider.Container, scanner *bufio.Scanner) {
	if len(c.CartService.SelectedLines()) == 0 {
		fmt.Println("先选中要结算的商品")
		return
	}
	address := prompt(scanner, "收货地址: ")
	if address == "" {
		if saved, ok, _ := c.Session.DeliveryAddress(); ok {
			address = saved
			fmt.Println(ansiDim + "使用上次地址: " + address + ansiReset)
		}
	}
	payment := service.PaymentDetails{
		NameOnCard:   prompt(scanner, "持卡人: "),
		CardNumber:   prompt(scanner, "卡号: "),
		Expiry:       prompt(scanner, "有效期 (MM/YY): "),
		SecurityCode: prompt(scanner, "安全码: "),
	}

	fmt.Println(ansiDim + "提交中..." + ansiReset)
	if err := c.CheckoutService.Submit(ctx, payment, address); err != nil {
		fail(err)
		return
	}
	fmt.Println(ansiGreen + "订单已提交" + ansiReset)
}

func cmdOrders(ctx context.Context, c *provider.Container) {
	orders, err := c.OrderService.History(ctx)
	if err != nil {
		fail(err)
		return
	}
	for i, order := range orders {
		fmt.Printf("%d. %-12s %-10s %s  %d 件商品\n", i, order.OrderNo, order.Status, order.OrderDate, len(order.OrderLines))
	}
}

func cmdOrder(ctx context.Context, c *provider.Container, args []string, scanner *bufio.Scanner) {
	if len(args) != 1 {
		fmt.Println("用法: order <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("用法: order <n>")
		return
	}
	orders, err := c.OrderService.History(ctx)
	if err != nil {
		fail(err)
		return
	}
	if n < 0 || n >= len(orders) {
		fmt.Println("没有这个订单")
		return
	}
	editor := c.OrderService.OpenEditor(ctx, orders[n])
	orderLoop(c, editor, scanner)
}

// orderLoop 订单编辑子循环。Clean 状态下 submit 是再次下单，
// Dirty 状态下 submit 是提交修改。
func orderLoop(c *provider.Container, editor *service.OrderEditor, scanner *bufio.Scanner) {
	fmt.Println(ansiDim + "订单命令: lines, addr <地址>, inc <i>, dec <i>, rm <i>, cancel, submit, back" + ansiReset)
	for {
		fmt.Printf(ansiCyan+"order(%s)> "+ansiReset, editor.State())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		ctx, cancel := context.WithTimeout(context.Background(), c.Config.API.Timeout())

		switch cmd {
		case "lines":
			for i, line := range editor.Lines() {
				fmt.Printf("%d. %-24s x%d  %s\n", i, line.Line.ProductName, line.Qty, line.Line.UnitPrice.MulInt(line.Qty))
			}
			fmt.Println("地址:", editor.Address())
		case "addr":
			editor.SetAddress(strings.Join(args, " "))
		case "inc":
			if i, err := strconv.Atoi(argOr(args, 0)); err == nil {
				fail(editor.IncrementQty(i))
			}
		case "dec":
			if i, err := strconv.Atoi(argOr(args, 0)); err == nil {
				editor.DecrementQty(i)
			}
		case "rm":
			if i, err := strconv.Atoi(argOr(args, 0)); err == nil {
				editor.RemoveLine(i)
			}
		case "cancel":
			fail(editor.RequestCancel(ctx))
		case "submit":
			if err := editor.Submit(ctx); err != nil {
				fail(err)
			} else {
				fmt.Println(ansiGreen + "已提交" + ansiReset)
			}
		case "back":
			cancel()
			if editor.CloseNeedsConfirm() {
				if prompt(scanner, "有未提交的修改，确认放弃? (y/N) ") != "y" {
					continue
				}
			}
			return
		default:
			fmt.Println("未知命令:", cmd)
		}
		cancel()
	}
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func cmdReviews(ctx context.Context, c *provider.Container, args []string) {
	if len(args) != 1 {
		fmt.Println("用法: reviews <productId>")
		return
	}
	reviews, err := c.ReviewService.ProductReviews(ctx, args[0])
	if err != nil {
		fail(err)
		return
	}
	for _, review := range reviews {
		fmt.Printf("%.1f  %s\n", review.Rating, review.Message)
	}
	fmt.Printf("均分: %.1f (%d 条)\n", service.AverageRating(reviews), len(reviews))
}

func cmdReview(ctx context.Context, c *provider.Container, args []string) {
	if len(args) < 2 {
		fmt.Println("用法: review <productId> <rating> [message...]")
		return
	}
	rating, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("用法: review <productId> <rating> [message...]")
		return
	}
	message := strings.Join(args[2:], " ")
	if err := c.ReviewService.Create(ctx, args[0], message, rating); err != nil {
		fail(err)
		return
	}
	fmt.Println(ansiGreen + "评价已提交" + ansiReset)
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "╔══════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + "║        Storefront Client CLI         ║" + ansiReset)
	fmt.Println(ansiCyan + "╚══════════════════════════════════════╝" + ansiReset)
}
