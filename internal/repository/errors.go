package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 一意制約（email / category name / order_id+product_id）
	ErrDuplicate = errors.New("duplicate key")

	// 外部キーの参照先が存在しない
	ErrInvalidReference = errors.New("invalid reference")

	// CHECK制約（price >= 0 など）・金額の桁あふれ
	ErrConstraintViolated = errors.New("constraint violated")
)
