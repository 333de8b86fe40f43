// Package testdb opens isolated in-memory SQLite catalogs for tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/angelmondragon/supercompare-api/pkg/db/models"
)

// Open returns a migrated, empty catalog database private to t.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(models.All()...))
	return conn
}

// Fixture is the seeded catalog returned by Seed.
type Fixture struct {
	Supermarkets  []models.Supermarket
	Categories    []models.Category
	Subcategories []models.Subcategory
	Products      []models.Product
}

// ProductsIn returns the seeded products of one subcategory in id order.
func (f Fixture) ProductsIn(subcategoryID int64) []models.Product {
	var out []models.Product
	for _, p := range f.Products {
		if p.SubcategoryID == subcategoryID {
			out = append(out, p)
		}
	}
	return out
}

const (
	MercadonaID int64 = 1
	CarrefourID int64 = 2
	DiaID       int64 = 3
	// MissingSupermarketID is referenced by a product but never stored.
	MissingSupermarketID int64 = 42

	LacteosID int64 = 1
	BebidasID int64 = 2
	FrutasID  int64 = 3

	LecheID     int64 = 1
	YogurID     int64 = 2
	RefrescosID int64 = 3
	ManzanasID  int64 = 4
	// OrphanSubcategoryID points at a category that does not exist.
	OrphanSubcategoryID int64 = 5
	// MissingCategoryID is referenced by the orphan subcategory.
	MissingCategoryID int64 = 99

	LecheCount = 12
)

// Seed inserts a small catalog: three supermarkets, three categories, five
// subcategories (one orphaned) and twenty products, one of which references a
// supermarket that does not exist. Leche prices decrease with id so ordering by
// price differs from natural order.
func Seed(t *testing.T, conn *gorm.DB) Fixture {
	t.Helper()

	f := Fixture{
		Supermarkets: []models.Supermarket{
			{ID: MercadonaID, Title: "Mercadona", Image: str("mercadona.png"), Description: str("Supermercado valenciano")},
			{ID: CarrefourID, Title: "Carrefour", Image: str("carrefour.png")},
			{ID: DiaID, Title: "Dia"},
		},
		Categories: []models.Category{
			{ID: LacteosID, SupermarketID: MercadonaID, Title: "Lácteos"},
			{ID: BebidasID, SupermarketID: MercadonaID, Title: "Bebidas"},
			{ID: FrutasID, SupermarketID: CarrefourID, Title: "Frutas"},
		},
		Subcategories: []models.Subcategory{
			{ID: LecheID, CategoryID: LacteosID, Title: "Leche"},
			{ID: YogurID, CategoryID: LacteosID, Title: "Yogures"},
			{ID: RefrescosID, CategoryID: BebidasID, Title: "Refrescos"},
			{ID: ManzanasID, CategoryID: FrutasID, Title: "Manzanas"},
			{ID: OrphanSubcategoryID, CategoryID: MissingCategoryID, Title: "Huérfana"},
		},
	}

	var id int64
	add := func(subcategoryID, supermarketID int64, title string, price float64, image *string) {
		id++
		f.Products = append(f.Products, models.Product{
			ID:            id,
			SubcategoryID: subcategoryID,
			SupermarketID: supermarketID,
			Title:         str(title),
			Image:         image,
			Price:         num(price),
			PricePerKilo:  num(price * 2),
		})
	}

	for i := 1; i <= LecheCount; i++ {
		add(LecheID, MercadonaID, fmt.Sprintf("Leche %02d", i), float64(LecheCount+1-i)*0.5, str(fmt.Sprintf("leche-%02d.png", i)))
	}
	add(YogurID, MercadonaID, "Yogur natural", 1.2, nil)
	add(YogurID, MercadonaID, "Yogur griego", 2.5, str("griego.png"))
	add(YogurID, MercadonaID, "Yogur de fresa", 0.9, nil)
	add(RefrescosID, MercadonaID, "Refresco cola", 1.1, nil)
	add(RefrescosID, MercadonaID, "Refresco 100% naranja", 1.3, nil)
	add(ManzanasID, CarrefourID, "Manzana golden", 2.1, nil)
	add(ManzanasID, CarrefourID, "Manzana fuji", 2.4, nil)
	add(ManzanasID, MissingSupermarketID, "Manzana sin tienda", 1.9, nil)

	require.NoError(t, conn.Create(&f.Supermarkets).Error)
	require.NoError(t, conn.Create(&f.Categories).Error)
	require.NoError(t, conn.Create(&f.Subcategories).Error)
	require.NoError(t, conn.Create(&f.Products).Error)
	return f
}

func str(v string) *string { return &v }

func num(v float64) *float64 { return &v }
