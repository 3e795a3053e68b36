package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Users() UserRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
