package model

// マイグレーション対象（依存順）
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Product{},
		&Order{},
		&OrderItem{},
	}
}
