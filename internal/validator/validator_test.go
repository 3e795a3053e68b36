package validator_test

import (
	"net/http"
	"testing"

	"minishop/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name  string           `json:"name" validate:"required,max=5"`
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,lte=100"`
	Qty   *int64           `json:"qty" validate:"required,gte=0"`
}

func ptrDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptrInt(v int64) *int64 { return &v }

func TestCustomValidator_Valid(t *testing.T) {
	v := validator.New()

	// 0はrequiredを満たす（ポインタなので）
	assert.NoError(t, v.Validate(&priced{Name: "a", Price: ptrDec("0"), Qty: ptrInt(0)}))
	assert.NoError(t, v.Validate(&priced{Name: "abcde", Price: ptrDec("100.00"), Qty: ptrInt(3)}))
}

func TestCustomValidator_Messages(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name string
		in   priced
		want string
	}{
		{"missing name", priced{Price: ptrDec("1"), Qty: ptrInt(1)}, "name required"},
		{"long name", priced{Name: "abcdef", Price: ptrDec("1"), Qty: ptrInt(1)}, "name must be at most 5 characters"},
		{"nil price", priced{Name: "a", Qty: ptrInt(1)}, "price required"},
		{"negative price", priced{Name: "a", Price: ptrDec("-0.01"), Qty: ptrInt(1)}, "price must be >= 0"},
		{"big price", priced{Name: "a", Price: ptrDec("100.01"), Qty: ptrInt(1)}, "price must be <= 100"},
		{"negative qty", priced{Name: "a", Price: ptrDec("1"), Qty: ptrInt(-1)}, "qty must be >= 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.in)
			require.Error(t, err)

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tc.want, he.Message)
		})
	}
}

func TestMessage_NonValidationError(t *testing.T) {
	assert.Equal(t, "invalid body", validator.Message(assert.AnError))
}
