package models

type Subcategory struct {
	ID         int64  `gorm:"column:id_subcategoria;primaryKey;autoIncrement"`
	CategoryID int64  `gorm:"column:id_categoria;not null;index"`
	Title      string `gorm:"column:titulo;type:varchar(45);not null"`
}

func (Subcategory) TableName() string {
	return "subcategoria"
}
