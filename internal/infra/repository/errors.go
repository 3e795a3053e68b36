package repository

import (
	"errors"
	"fmt"

	repo "minishop/internal/repository"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DBのエラーをrepositoryのエラーへ寄せる。
// TranslateErrorが効かないドライバでもコードで判定する。
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		sentinel = repo.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		sentinel = repo.ErrInvalidReference
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		sentinel = repo.ErrConstraintViolated
	default:
		sentinel = fromDriverError(err)
	}

	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

func fromDriverError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return repo.ErrDuplicate
		case "23503":
			return repo.ErrInvalidReference
		case "23514", "22003": // 22003: numeric_value_out_of_range
			return repo.ErrConstraintViolated
		}
		return nil
	}

	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062:
			return repo.ErrDuplicate
		case 1451, 1452:
			return repo.ErrInvalidReference
		case 3819, 1264: // 1264: Out of range value
			return repo.ErrConstraintViolated
		}
	}
	return nil
}
