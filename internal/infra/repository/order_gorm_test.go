package repository

import (
	"context"
	"testing"

	"minishop/internal/domain/model"
	repo "minishop/internal/repository"

	"github.com/stretchr/testify/assert"
)

// 不正なstatusはDBへ行く前に弾く
func TestOrderCreate_RejectsUnknownStatus(t *testing.T) {
	r := NewOrderGormRepository(nil)

	err := r.Create(context.Background(), &model.Order{UserID: 1, Status: "SHIPPED"})
	assert.ErrorIs(t, err, repo.ErrConstraintViolated)
	assert.Contains(t, err.Error(), `"SHIPPED"`)
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, model.OrderStatus("").Valid())
	assert.False(t, model.OrderStatus("pending").Valid())
}
