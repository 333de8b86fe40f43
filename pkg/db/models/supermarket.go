package models

// Supermarket is a store whose catalog is exposed by the API.
type Supermarket struct {
	ID          int64   `gorm:"column:id_supermercado;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:titulo;type:varchar(45);not null"`
	Image       *string `gorm:"column:imagen;type:text"`
	Description *string `gorm:"column:descripcion;type:text"`
}

func (Supermarket) TableName() string {
	return "supermercado"
}
