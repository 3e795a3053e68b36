//go:build integration

package provision_test

import (
	"context"
	"testing"

	"minishop/internal/domain/model"
	"minishop/internal/infra/db"
	"minishop/internal/provision"
	"minishop/internal/testutil/pgtest"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Idempotent(t *testing.T) {
	cfg := pgtest.Start(t, "minishop_provision")
	ctx := context.Background()

	first, err := provision.Run(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, first.DatabaseCreated)
	assert.Equal(t, int64(3), first.Categories)
	assert.Equal(t, int64(3), first.Products)

	second, err := provision.Run(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, second.DatabaseCreated)
	assert.Equal(t, int64(3), second.Categories)
	assert.Equal(t, int64(3), second.Products)

	gormDB, err := db.Connect(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { _ = db.Close(gormDB) }()

	var cats []model.Category
	require.NoError(t, gormDB.Order("name").Find(&cats).Error)
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"Eletrônicos", "Livros", "Roupas"}, []string{cats[0].Name, cats[1].Name, cats[2].Name})

	var mouse model.Product
	require.NoError(t, gormDB.Where("name = ?", "Mouse").First(&mouse).Error)
	assert.Equal(t, "Mouse óptico", mouse.Description)
	assert.True(t, mouse.Price.Equal(decimal.RequireFromString("59.90")))
	assert.Equal(t, int64(100), mouse.Stock)
	assert.Equal(t, cats[0].ID, mouse.CategoryID)
}

// seedの既存行は上書きしない
func TestApply_KeepsExistingRows(t *testing.T) {
	cfg := pgtest.Start(t, "minishop_keep")
	ctx := context.Background()

	_, err := provision.Run(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)

	gormDB, err := db.Connect(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { _ = db.Close(gormDB) }()

	require.NoError(t, gormDB.Model(&model.Product{}).Where("name = ?", "Teclado").Update("stock", 7).Error)

	res, err := provision.Apply(ctx, gormDB, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Products)

	var teclado model.Product
	require.NoError(t, gormDB.Where("name = ?", "Teclado").First(&teclado).Error)
	assert.Equal(t, int64(7), teclado.Stock)
}
