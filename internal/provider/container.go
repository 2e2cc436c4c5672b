package provider

import (
	"github.com/storefront-client/internal/api"
	"github.com/storefront-client/internal/cache"
	"github.com/storefront-client/internal/config"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/repository"
	"github.com/storefront-client/internal/service"
	"github.com/storefront-client/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	SettingRepo repository.SettingRepository
	CartRepo    repository.CartRepository
	Vault       *repository.Vault

	Session *session.Session
	Client  *api.Client

	// Services
	AuthService     *service.AuthService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	ReviewService   *service.ReviewService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Cache); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	settingRepo := repository.NewSettingRepository(models.DB)
	cartRepo := repository.NewCartRepository(settingRepo)

	vault, err := repository.NewVault(settingRepo, cfg.Session.VaultSecret)
	if err != nil {
		return nil, err
	}
	sess := session.New(vault, settingRepo)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout(), sess)

	cartService := service.NewCartService(cartRepo)
	if err := cartService.Load(); err != nil {
		logger.Warnw("provider_load_cart_failed", "error", err)
	}

	return &Container{
		Config:          cfg,
		SettingRepo:     settingRepo,
		CartRepo:        cartRepo,
		Vault:           vault,
		Session:         sess,
		Client:          client,
		AuthService:     service.NewAuthService(client, sess),
		CatalogService:  service.NewCatalogService(client),
		CartService:     cartService,
		CheckoutService: service.NewCheckoutService(cartService, client, sess),
		OrderService:    service.NewOrderService(client, client, client, sess),
		ReviewService:   service.NewReviewService(client, sess),
	}, nil
}
