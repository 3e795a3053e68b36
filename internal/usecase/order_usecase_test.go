package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"
	"minishop/internal/repository/repotest"
	"minishop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newOrderUsecase() (*usecase.OrderUsecase, *repotest.TxManager, *repotest.OrderRepoMock) {
	txm := repotest.NewTxManager(repotest.NewTxRepos())
	orders := new(repotest.OrderRepoMock)
	return usecase.NewOrderUsecase(txm, orders), txm, orders
}

func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Price: dec("10.00")}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(20)).Return(model.Product{ID: 20, Price: dec("5.00")}, nil)

	r.OrderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.UserID == 1 && o.Status == model.OrderStatusPending && o.Total.IsZero()
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Order).ID = 100
	}).Return(nil)

	// 単価は商品価格のスナップショット
	r.OrderItemRepo.On("CreateBulk", mock.Anything, int64(100), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2 &&
			items[0].ProductID == 10 && items[0].Quantity == 2 && items[0].UnitPrice.Equal(dec("10.00")) &&
			items[1].ProductID == 20 && items[1].Quantity == 1 && items[1].UnitPrice.Equal(dec("5.00"))
	})).Return(nil)

	r.OrderRepo.On("RecalcTotal", mock.Anything, int64(100)).Return(dec("25.00"), nil)

	out, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 1,
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 10, Quantity: 2},
			{ProductID: 20, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), out.ID)
	assert.Equal(t, "PENDING", out.Status)
	assert.True(t, out.Total.Equal(dec("25")), "total=%s", out.Total)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Subtotal.Equal(dec("20")))
	assert.True(t, out.Items[1].Subtotal.Equal(dec("5")))

	assert.True(t, txm.Committed)
	r.OrderRepo.AssertExpectations(t)
	r.OrderItemRepo.AssertExpectations(t)
}

func TestOrderUsecase_PlaceOrder_InputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   usecase.PlaceOrderInput
		want string
	}{
		{"no user", usecase.PlaceOrderInput{Items: []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 1}}}, "invalid user_id"},
		{"no items", usecase.PlaceOrderInput{UserID: 1}, "items required"},
		{"zero quantity", usecase.PlaceOrderInput{UserID: 1, Items: []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 0}}}, "quantity must be > 0"},
		{"bad product", usecase.PlaceOrderInput{UserID: 1, Items: []usecase.PlaceOrderItemInput{{ProductID: 0, Quantity: 1}}}, "invalid product_id"},
		{"duplicate product", usecase.PlaceOrderInput{UserID: 1, Items: []usecase.PlaceOrderItemInput{
			{ProductID: 5, Quantity: 1},
			{ProductID: 5, Quantity: 2},
		}}, "duplicate product_id 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, txm, _ := newOrderUsecase()

			_, err := uc.PlaceOrder(context.Background(), tc.in)
			assertStatus(t, err, http.StatusBadRequest)
			assertErrContains(t, err, tc.want)
			assert.False(t, txm.Committed)
			assert.False(t, txm.RolledBack)
		})
	}
}

func TestOrderUsecase_PlaceOrder_UnknownUser(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(9)).Return(model.User{}, repo.ErrNotFound)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 9,
		Items:  []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assertStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "invalid user_id")
	assert.True(t, txm.RolledBack)
	r.OrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_UnknownProduct(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Price: dec("1")}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(20)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 1,
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 10, Quantity: 1},
			{ProductID: 20, Quantity: 1},
		},
	})
	assertStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "invalid product_id 20")
	assert.True(t, txm.RolledBack)
	r.OrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_RecalcFailureRollsBack(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Price: dec("1")}, nil)
	r.OrderRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Order).ID = 1
	}).Return(nil)
	r.OrderItemRepo.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)
	r.OrderRepo.On("RecalcTotal", mock.Anything, int64(1)).Return(decimal.Zero, errors.New("deadlock"))

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 1,
		Items:  []usecase.PlaceOrderItemInput{{ProductID: 10, Quantity: 1}},
	})
	assertStatus(t, err, http.StatusInternalServerError)
	assert.True(t, txm.RolledBack)
	assert.False(t, txm.Committed)
}

func TestOrderUsecase_PlaceOrder_TotalTooLarge(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: dec("59.90")}, nil)

	// 59.90 × 100000000 は decimal(10,2) に入らない
	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 1,
		Items:  []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 100000000}},
	})
	assertStatus(t, err, http.StatusBadRequest)
	assertErrContains(t, err, "order total too large")
	assert.True(t, txm.RolledBack)
	r.OrderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	r.OrderItemRepo.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_RecalcOverflowIsBadRequest(t *testing.T) {
	uc, txm, _ := newOrderUsecase()
	r := txm.Repos

	r.UserRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	r.ProductRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Price: dec("1")}, nil)
	r.OrderRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Order).ID = 1
	}).Return(nil)
	r.OrderItemRepo.On("CreateBulk", mock.Anything, int64(1), mock.Anything).Return(nil)
	r.OrderRepo.On("RecalcTotal", mock.Anything, int64(1)).Return(decimal.Zero, repo.ErrConstraintViolated)

	_, err := uc.PlaceOrder(context.Background(), usecase.PlaceOrderInput{
		UserID: 1,
		Items:  []usecase.PlaceOrderItemInput{{ProductID: 10, Quantity: 1}},
	})
	assertStatus(t, err, http.StatusBadRequest)
	assert.True(t, txm.RolledBack)
}

func TestOrderUsecase_GetOrder(t *testing.T) {
	uc, _, orders := newOrderUsecase()

	orders.On("FindByID", mock.Anything, int64(5)).Return(model.Order{
		ID:     5,
		UserID: 1,
		Status: model.OrderStatusPaid,
		Total:  dec("25.00"),
		Items: []model.OrderItem{
			{ID: 1, OrderID: 5, ProductID: 10, Quantity: 2, UnitPrice: dec("10.00")},
			{ID: 2, OrderID: 5, ProductID: 20, Quantity: 1, UnitPrice: dec("5.00")},
		},
	}, nil)

	out, err := uc.GetOrder(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "PAID", out.Status)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].Subtotal.Equal(dec("20")))
}

func TestOrderUsecase_GetOrder_NotFound(t *testing.T) {
	uc, _, orders := newOrderUsecase()

	orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetOrder(context.Background(), 404)
	assertStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_RecalcOrderTotal(t *testing.T) {
	uc, _, orders := newOrderUsecase()

	orders.On("RecalcTotal", mock.Anything, int64(3)).Return(dec("25.00"), nil)
	orders.On("RecalcTotal", mock.Anything, int64(4)).Return(decimal.Zero, repo.ErrNotFound)

	total, err := uc.RecalcOrderTotal(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "25.00", total.StringFixed(2))

	_, err = uc.RecalcOrderTotal(context.Background(), 4)
	assertStatus(t, err, http.StatusNotFound)

	_, err = uc.RecalcOrderTotal(context.Background(), 0)
	assertStatus(t, err, http.StatusBadRequest)
}
