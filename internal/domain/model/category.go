package model

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`

	// カテゴリ削除で商品も消える
	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
