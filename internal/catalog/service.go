package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/angelmondragon/supercompare-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/pagination"
)

const (
	msgSupermarketNotFound = "Supermercado no encontrado"
	msgCategoryNotFound    = "Categoría no encontrada"
	msgSubcategoryNotFound = "Subcategoría no encontrada"
)

type catalogRepository interface {
	ListSupermarkets(ctx context.Context) ([]models.Supermarket, error)
	ListSupermarketsByIDs(ctx context.Context, ids []int64) ([]models.Supermarket, error)
	FindSupermarketByTitle(ctx context.Context, title string) (*models.Supermarket, error)
	ListCategoriesBySupermarket(ctx context.Context, supermarketID int64) ([]models.Category, error)
	FindCategory(ctx context.Context, id int64) (*models.Category, error)
	ListSubcategoriesByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error)
	FindSubcategory(ctx context.Context, id int64) (*models.Subcategory, error)
	ListProductsBySubcategory(ctx context.Context, subcategoryID int64) ([]models.Product, error)
	SearchProducts(ctx context.Context, q ProductQuery) ([]models.Product, error)
}

// Service exposes the read operations behind the public catalog endpoints.
type Service interface {
	ListPlaces(ctx context.Context) (*PlacesResponse, error)
	ListCategories(ctx context.Context, supermarketID int64) (*CategoriesResponse, error)
	ListSubcategories(ctx context.Context, categoryID int64) (*SubcategoriesResponse, error)
	ListSubcategoryProducts(ctx context.Context, subcategoryID int64) (*SubcategoryProductsResponse, error)
	Search(ctx context.Context, params SearchParams) ([]SearchResultDTO, error)
	SupermarketIDByTitle(ctx context.Context, title string) (*SupermarketIDResponse, error)
}

type service struct {
	repo catalogRepository
}

// NewService builds a catalog service over the provided repository.
func NewService(repo catalogRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func SupermarketNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, msgSupermarketNotFound)
}

func CategoryNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, msgCategoryNotFound)
}

func SubcategoryNotFound() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, msgSubcategoryNotFound)
}

func (s *service) ListPlaces(ctx context.Context) (*PlacesResponse, error) {
	rows, err := s.repo.ListSupermarkets(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list supermarkets")
	}
	return &PlacesResponse{Places: mapAll(rows, placeFromModel)}, nil
}

// ListCategories does not check that the supermarket exists; an unknown id
// yields an empty list.
func (s *service) ListCategories(ctx context.Context, supermarketID int64) (*CategoriesResponse, error) {
	rows, err := s.repo.ListCategoriesBySupermarket(ctx, supermarketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return &CategoriesResponse{Categories: mapAll(rows, categoryFromModel)}, nil
}

func (s *service) ListSubcategories(ctx context.Context, categoryID int64) (*SubcategoriesResponse, error) {
	category, err := s.repo.FindCategory(ctx, categoryID)
	if err != nil {
		return nil, lookupError(err, CategoryNotFound, "load category")
	}

	rows, err := s.repo.ListSubcategoriesByCategory(ctx, category.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list subcategories")
	}

	return &SubcategoriesResponse{
		Category:      categoryFromModel(*category),
		Subcategories: mapAll(rows, subcategoryFromModel),
	}, nil
}

// ListSubcategoryProducts resolves the subcategory, then loads its parent
// category and its products concurrently. A subcategory whose category is
// missing is reported as a missing category.
func (s *service) ListSubcategoryProducts(ctx context.Context, subcategoryID int64) (*SubcategoryProductsResponse, error) {
	subcategory, err := s.repo.FindSubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, lookupError(err, SubcategoryNotFound, "load subcategory")
	}

	var (
		category *models.Category
		products []models.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		row, err := s.repo.FindCategory(gctx, subcategory.CategoryID)
		if err != nil {
			return lookupError(err, CategoryNotFound, "load parent category")
		}
		category = row
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListProductsBySubcategory(gctx, subcategory.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
		}
		products = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SubcategoryProductsResponse{
		Category:    categoryFromModel(*category),
		Subcategory: subcategoryFromModel(*subcategory),
		Products:    mapAll(products, productFromModel),
	}, nil
}

func (s *service) SupermarketIDByTitle(ctx context.Context, title string) (*SupermarketIDResponse, error) {
	row, err := s.repo.FindSupermarketByTitle(ctx, title)
	if err != nil {
		return nil, lookupError(err, SupermarketNotFound, "find supermarket by title")
	}
	return &SupermarketIDResponse{ID: row.ID}, nil
}

// Search returns one page of products whose title contains params.Query.
//
// MaxResults caps the matched set before pagination and also bounds the page
// window, so with a cap pages past it are empty even when more rows match.
func (s *service) Search(ctx context.Context, params SearchParams) ([]SearchResultDTO, error) {
	window := pagination.PageWindow(params.Page, pagination.PageSize, params.MaxResults)
	if window.Empty() {
		return []SearchResultDTO{}, nil
	}

	products, err := s.repo.SearchProducts(ctx, ProductQuery{
		TitleContains: params.Query,
		OrderByPrice:  params.OrderByPrice,
		Offset:        window.Offset,
		Limit:         window.Limit,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search products")
	}

	images, err := s.supermarketImages(ctx, products)
	if err != nil {
		return nil, err
	}

	out := make([]SearchResultDTO, 0, len(products))
	for _, p := range products {
		out = append(out, searchResultFromModel(p, images[p.SupermarketID]))
	}
	return out, nil
}

// supermarketImages resolves the image of every supermarket referenced by
// products. Unknown supermarkets are absent from the map.
func (s *service) supermarketImages(ctx context.Context, products []models.Product) (map[int64]*string, error) {
	seen := make(map[int64]struct{}, len(products))
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.SupermarketID]; ok {
			continue
		}
		seen[p.SupermarketID] = struct{}{}
		ids = append(ids, p.SupermarketID)
	}

	rows, err := s.repo.ListSupermarketsByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve supermarket images")
	}

	images := make(map[int64]*string, len(rows))
	for _, row := range rows {
		images[row.ID] = row.Image
	}
	return images, nil
}

func lookupError(err error, notFound func() error, step string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound()
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, step)
}
