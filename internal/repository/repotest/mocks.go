// Package repotest はusecaseのテスト用にrepositoryのmockを置く。
package repotest

import (
	"context"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) RecalcTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, orderID)
	total, _ := args.Get(0).(decimal.Decimal)
	return total, args.Error(1)
}

func (m *OrderRepoMock) DeleteCascade(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

type ReportRepoMock struct{ mock.Mock }

func (m *ReportRepoMock) TopCategoriesSales(ctx context.Context, limit int) ([]model.CategorySales, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]model.CategorySales)
	return rows, args.Error(1)
}

// Tx内のrepo一式
type TxRepos struct {
	UserRepo      *UserRepoMock
	ProductRepo   *ProductRepoMock
	OrderRepo     *OrderRepoMock
	OrderItemRepo *OrderItemRepoMock
}

func NewTxRepos() *TxRepos {
	return &TxRepos{
		UserRepo:      new(UserRepoMock),
		ProductRepo:   new(ProductRepoMock),
		OrderRepo:     new(OrderRepoMock),
		OrderItemRepo: new(OrderItemRepoMock),
	}
}

func (r *TxRepos) Users() repo.UserRepository           { return r.UserRepo }
func (r *TxRepos) Products() repo.ProductRepository     { return r.ProductRepo }
func (r *TxRepos) Orders() repo.OrderRepository         { return r.OrderRepo }
func (r *TxRepos) OrderItems() repo.OrderItemRepository { return r.OrderItemRepo }

// fnをそのまま実行する。Committed/RolledBackで結果を見る
type TxManager struct {
	Repos      *TxRepos
	Committed  bool
	RolledBack bool
}

func NewTxManager(r *TxRepos) *TxManager {
	return &TxManager{Repos: r}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := fn(m.Repos); err != nil {
		m.RolledBack = true
		return err
	}
	m.Committed = true
	return nil
}
