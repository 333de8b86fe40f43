package models

// Product is a supermarket listing. SupermarketID is denormalized from the
// subcategory's category so search results can resolve the store directly.
type Product struct {
	ID            int64    `gorm:"column:id_producto;primaryKey;autoIncrement"`
	SubcategoryID int64    `gorm:"column:id_subcategoria;not null;index"`
	SupermarketID int64    `gorm:"column:id_supermercado;not null;index"`
	Title         *string  `gorm:"column:titulo;type:text"`
	Image         *string  `gorm:"column:imagen;type:text"`
	Price         *float64 `gorm:"column:precio"`
	PricePerKilo  *float64 `gorm:"column:precioporkilo"`
}

func (Product) TableName() string {
	return "producto"
}

// All lists every catalog model, parents first.
func All() []any {
	return []any{&Supermarket{}, &Category{}, &Subcategory{}, &Product{}}
}
