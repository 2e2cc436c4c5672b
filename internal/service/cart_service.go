package service

import (
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/repository"
)

// CartLine 购物车行。Selected 只在内存中维护，不落盘。
type CartLine struct {
	Product  models.Product
	Quantity int
	Selected bool
}

// SelectAllState 全选状态是派生值：所有行都被选中才为真，空购物车为假。
func SelectAllState(lines []CartLine) bool {
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if !line.Selected {
			return false
		}
	}
	return true
}

// CartService 本地购物车。按商品去重，同一商品重复加入只累加数量。
// 每次变更后立即写回本地存储；写失败只记日志不打断操作，
// 下次加载会回到上一次成功落盘的状态。
type CartService struct {
	repo  repository.CartRepository
	lines []CartLine
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Load 从本地存储加载购物车，选择状态重置为未选
func (s *CartService) Load() error {
	products, quantities, err := s.repo.Load()
	if err != nil {
		return err
	}
	s.lines = make([]CartLine, 0, len(products))
	for i, product := range products {
		qty := quantities[i]
		if qty < 1 {
			qty = 1
		}
		s.lines = append(s.lines, CartLine{Product: product, Quantity: qty})
	}
	return nil
}

// Lines 当前购物车行的副本
func (s *CartService) Lines() []CartLine {
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Add 加入商品。已存在同一商品时数量加一，否则在末尾追加数量为一的新行。
func (s *CartService) Add(product models.Product) {
	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, CartLine{Product: product, Quantity: 1})
	s.persist()
}

// RemoveByProductIDs 按商品编号删除行
func (s *CartService) RemoveByProductIDs(ids ...string) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.lines[:0]
	for _, line := range s.lines {
		if !drop[line.Product.ID] {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persist()
}

// SetQuantity 修改行数量。数量小于一或下标越界时不做任何事。
func (s *CartService) SetQuantity(index, qty int) {
	if index < 0 || index >= len(s.lines) || qty < 1 {
		return
	}
	s.lines[index].Quantity = qty
	s.persist()
}

// ToggleSelection 切换单行选中状态，只改内存
func (s *CartService) ToggleSelection(index int, selected bool) {
	if index < 0 || index >= len(s.lines) {
		return
	}
	s.lines[index].Selected = selected
}

// SelectAll 设置所有行的选中状态
func (s *CartService) SelectAll(selected bool) {
	for i := range s.lines {
		s.lines[i].Selected = selected
	}
}

// AllSelected 当前全选状态
func (s *CartService) AllSelected() bool {
	return SelectAllState(s.lines)
}

// AnySelected 是否有任何行被选中
func (s *CartService) AnySelected() bool {
	for _, line := range s.lines {
		if line.Selected {
			return true
		}
	}
	return false
}

// SelectedLines 被选中行的副本
func (s *CartService) SelectedLines() []CartLine {
	var selected []CartLine
	for _, line := range s.lines {
		if line.Selected {
			selected = append(selected, line)
		}
	}
	return selected
}

// Total 选中行的合计金额，未选中行不计入
func (s *CartService) Total() models.Money {
	total := models.Money{}
	for _, line := range s.lines {
		if line.Selected {
			total = total.Add(line.Product.Price.MulInt(line.Quantity))
		}
	}
	return total
}

// DropSelected 删除全部选中行，用于下单成功后清理已提交的商品
func (s *CartService) DropSelected() {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if !line.Selected {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persist()
}

func (s *CartService) persist() {
	products := make([]models.Product, len(s.lines))
	quantities := make([]int, len(s.lines))
	for i, line := range s.lines {
		products[i] = line.Product
		quantities[i] = line.Quantity
	}
	if err := s.repo.Save(products, quantities); err != nil {
		logger.Warnw("购物车写入失败", "error", err)
	}
}
