package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/angelmondragon/supercompare-api/internal/repo"
	"github.com/angelmondragon/supercompare-api/pkg/db/models"
)

// ProductQuery describes one page of a title search.
type ProductQuery struct {
	TitleContains string
	OrderByPrice  bool
	Offset        int
	Limit         int
}

// Repository reads the catalog tables. Single-row lookups return
// gorm.ErrRecordNotFound when nothing matches; list lookups return empty slices.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListSupermarkets returns every supermarket in id order.
func (r *Repository) ListSupermarkets(ctx context.Context) ([]models.Supermarket, error) {
	var rows []models.Supermarket
	err := r.DB(ctx).Order("id_supermercado ASC").Find(&rows).Error
	return rows, err
}

// ListSupermarketsByIDs loads the supermarkets whose ids appear in ids.
func (r *Repository) ListSupermarketsByIDs(ctx context.Context, ids []int64) ([]models.Supermarket, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.Supermarket
	err := r.DB(ctx).Where("id_supermercado IN ?", ids).Find(&rows).Error
	return rows, err
}

// FindSupermarketByTitle performs an exact, collation-default title match.
func (r *Repository) FindSupermarketByTitle(ctx context.Context, title string) (*models.Supermarket, error) {
	var row models.Supermarket
	if err := r.DB(ctx).Where("titulo = ?", title).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListCategoriesBySupermarket returns the categories owned by a supermarket.
func (r *Repository) ListCategoriesBySupermarket(ctx context.Context, supermarketID int64) ([]models.Category, error) {
	var rows []models.Category
	err := r.DB(ctx).
		Where("id_supermercado = ?", supermarketID).
		Order("id_categoria ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *Repository) FindCategory(ctx context.Context, id int64) (*models.Category, error) {
	var row models.Category
	if err := r.DB(ctx).First(&row, "id_categoria = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListSubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error) {
	var rows []models.Subcategory
	err := r.DB(ctx).
		Where("id_categoria = ?", categoryID).
		Order("id_subcategoria ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *Repository) FindSubcategory(ctx context.Context, id int64) (*models.Subcategory, error) {
	var row models.Subcategory
	if err := r.DB(ctx).First(&row, "id_subcategoria = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListProductsBySubcategory(ctx context.Context, subcategoryID int64) ([]models.Product, error) {
	var rows []models.Product
	err := r.DB(ctx).
		Where("id_subcategoria = ?", subcategoryID).
		Order("id_producto ASC").
		Find(&rows).
		Error
	return rows, err
}

// SearchProducts returns the window of products whose title contains the
// literal substring, ordered by price (ties by id) or by id.
func (r *Repository) SearchProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	tx := r.DB(ctx).Where(titleLikeClause, containsPattern(q.TitleContains))
	if q.OrderByPrice {
		tx = tx.Order("precio ASC")
	}
	tx = tx.Order("id_producto ASC")
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []models.Product
	err := tx.Find(&rows).Error
	return rows, err
}

const titleLikeClause = `titulo LIKE ? ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an unanchored LIKE pattern that treats the input literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
