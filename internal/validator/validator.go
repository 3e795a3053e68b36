package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// echoのValidatorとして登録する
type CustomValidator struct {
	v *playground.Validate
}

func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// エラーのフィールド名はjsonタグの名前にする
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// decimalはfloatとして gte/lte を判定する
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	return &CustomValidator{v: v}
}

// 失敗したら400（echo.HTTPError）
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, Message(err))
	}
	return nil
}

// 最初の違反を読める文にする
func Message(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid body"
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, fe.Param())
	default:
		return "invalid " + field
	}
}
