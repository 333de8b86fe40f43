package models

// Category groups subcategories inside a single supermarket.
type Category struct {
	ID            int64  `gorm:"column:id_categoria;primaryKey;autoIncrement"`
	SupermarketID int64  `gorm:"column:id_supermercado;not null;index"`
	Title         string `gorm:"column:titulo;type:varchar(45);not null"`
}

func (Category) TableName() string {
	return "categoria"
}
