package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/supercompare-api/internal/testdb"
	"github.com/angelmondragon/supercompare-api/pkg/db/models"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
)

func newSeededService(t *testing.T) (Service, testdb.Fixture) {
	t.Helper()
	repo, fixture := newSeededRepository(t)
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, fixture
}

func intPtr(v int) *int { return &v }

func searchIDs(rows []SearchResultDTO) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	require.Equal(t, code, typed.Code())
	return typed
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestService_ListPlaces(t *testing.T) {
	svc, fixture := newSeededService(t)

	resp, err := svc.ListPlaces(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Places, len(fixture.Supermarkets))
	assert.Equal(t, PlaceDTO{
		ID:          testdb.MercadonaID,
		Title:       "Mercadona",
		Description: fixture.Supermarkets[0].Description,
		Image:       fixture.Supermarkets[0].Image,
	}, resp.Places[0])
	assert.Nil(t, resp.Places[2].Image)
}

func TestService_ListCategories(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	resp, err := svc.ListCategories(ctx, testdb.MercadonaID)
	require.NoError(t, err)
	assert.Equal(t, []CategoryDTO{
		{ID: testdb.LacteosID, Title: "Lácteos"},
		{ID: testdb.BebidasID, Title: "Bebidas"},
	}, resp.Categories)

	resp, err = svc.ListCategories(ctx, 777)
	require.NoError(t, err)
	assert.NotNil(t, resp.Categories)
	assert.Empty(t, resp.Categories)
}

func TestService_ListSubcategories(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	resp, err := svc.ListSubcategories(ctx, testdb.LacteosID)
	require.NoError(t, err)
	assert.Equal(t, CategoryDTO{ID: testdb.LacteosID, Title: "Lácteos"}, resp.Category)
	assert.Equal(t, []SubcategoryDTO{
		{ID: testdb.LecheID, Title: "Leche"},
		{ID: testdb.YogurID, Title: "Yogures"},
	}, resp.Subcategories)

	_, err = svc.ListSubcategories(ctx, testdb.MissingCategoryID)
	typed := requireCode(t, err, pkgerrors.CodeNotFound)
	assert.Equal(t, "Categoría no encontrada", typed.Message())
}

func TestService_ListSubcategoryProducts(t *testing.T) {
	svc, fixture := newSeededService(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		resp, err := svc.ListSubcategoryProducts(ctx, testdb.ManzanasID)
		require.NoError(t, err)
		assert.Equal(t, CategoryDTO{ID: testdb.FrutasID, Title: "Frutas"}, resp.Category)
		assert.Equal(t, SubcategoryDTO{ID: testdb.ManzanasID, Title: "Manzanas"}, resp.Subcategory)

		want := fixture.ProductsIn(testdb.ManzanasID)
		require.Len(t, resp.Products, len(want))
		for i, p := range resp.Products {
			assert.Equal(t, productFromModel(want[i]), p)
		}
	})

	t.Run("missing subcategory", func(t *testing.T) {
		_, err := svc.ListSubcategoryProducts(ctx, 1000)
		typed := requireCode(t, err, pkgerrors.CodeNotFound)
		assert.Equal(t, "Subcategoría no encontrada", typed.Message())
	})

	t.Run("missing parent category", func(t *testing.T) {
		_, err := svc.ListSubcategoryProducts(ctx, testdb.OrphanSubcategoryID)
		typed := requireCode(t, err, pkgerrors.CodeNotFound)
		assert.Equal(t, "Categoría no encontrada", typed.Message())
	})
}

func TestService_SupermarketIDByTitle(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	resp, err := svc.SupermarketIDByTitle(ctx, "Dia")
	require.NoError(t, err)
	assert.Equal(t, testdb.DiaID, resp.ID)

	_, err = svc.SupermarketIDByTitle(ctx, "DIA")
	typed := requireCode(t, err, pkgerrors.CodeNotFound)
	assert.Equal(t, "Supermercado no encontrado", typed.Message())
}

func TestService_Search(t *testing.T) {
	svc, fixture := newSeededService(t)
	ctx := context.Background()
	allIDs := productIDs(fixture.Products)

	search := func(t *testing.T, params SearchParams) []SearchResultDTO {
		t.Helper()
		rows, err := svc.Search(ctx, params)
		require.NoError(t, err)
		require.NotNil(t, rows)
		return rows
	}

	t.Run("defaults return the first page in natural order", func(t *testing.T) {
		rows := search(t, DefaultSearchParams())
		assert.Equal(t, allIDs[:10], searchIDs(rows))
	})

	t.Run("page two returns items 10..19", func(t *testing.T) {
		params := DefaultSearchParams()
		params.Page = 2
		assert.Equal(t, allIDs[10:20], searchIDs(search(t, params)))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		params := DefaultSearchParams()
		params.Page = 3
		assert.Empty(t, search(t, params))
	})

	t.Run("partial last page", func(t *testing.T) {
		rows := search(t, SearchParams{Query: "Leche", Page: 2})
		assert.Equal(t, productIDs(fixture.ProductsIn(testdb.LecheID)[10:]), searchIDs(rows))
	})

	t.Run("max results caps the pagination universe", func(t *testing.T) {
		assert.Equal(t, allIDs[:5], searchIDs(search(t, SearchParams{MaxResults: intPtr(5), Page: 1})))
		assert.Equal(t, allIDs[10:13], searchIDs(search(t, SearchParams{MaxResults: intPtr(13), Page: 2})))
		assert.Empty(t, search(t, SearchParams{MaxResults: intPtr(10), Page: 2}))
	})

	t.Run("order by price is non-decreasing", func(t *testing.T) {
		for page := 1; page <= 2; page++ {
			rows := search(t, SearchParams{OrderByPrice: true, Page: page})
			require.NotEmpty(t, rows)
			for i := 1; i < len(rows); i++ {
				assert.LessOrEqual(t, *rows[i-1].Price, *rows[i].Price)
			}
		}
	})

	t.Run("attaches supermarket image", func(t *testing.T) {
		rows := search(t, SearchParams{Query: "Manzana", Page: 1})
		require.Len(t, rows, 3)
		for _, row := range rows[:2] {
			require.NotNil(t, row.SupermarketImage)
			assert.Equal(t, "carrefour.png", *row.SupermarketImage)
		}
		assert.Nil(t, rows[2].SupermarketImage, "unknown supermarket resolves to null")

		rows = search(t, SearchParams{Query: "Leche 01", Page: 1})
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].SupermarketImage)
		assert.Equal(t, "mercadona.png", *rows[0].SupermarketImage)
	})
}

type stubRepository struct {
	catalogRepository
	err         error
	subcategory *models.Subcategory
	lookups     int
}

func (s *stubRepository) ListSupermarkets(context.Context) ([]models.Supermarket, error) {
	return nil, s.err
}

func (s *stubRepository) ListCategoriesBySupermarket(context.Context, int64) ([]models.Category, error) {
	return nil, s.err
}

func (s *stubRepository) FindCategory(context.Context, int64) (*models.Category, error) {
	return nil, s.err
}

func (s *stubRepository) FindSubcategory(context.Context, int64) (*models.Subcategory, error) {
	if s.subcategory != nil {
		return s.subcategory, nil
	}
	return nil, s.err
}

func (s *stubRepository) ListProductsBySubcategory(context.Context, int64) ([]models.Product, error) {
	return nil, nil
}

func (s *stubRepository) FindSupermarketByTitle(context.Context, string) (*models.Supermarket, error) {
	return nil, s.err
}

func (s *stubRepository) SearchProducts(context.Context, ProductQuery) ([]models.Product, error) {
	s.lookups++
	return nil, s.err
}

func TestService_StoreFailuresAreInternal(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &stubRepository{err: boom}
	svc, err := NewService(repo)
	require.NoError(t, err)
	ctx := context.Background()

	calls := map[string]func() error{
		"places": func() error { _, err := svc.ListPlaces(ctx); return err },
		"categories": func() error {
			_, err := svc.ListCategories(ctx, 1)
			return err
		},
		"subcategories": func() error {
			_, err := svc.ListSubcategories(ctx, 1)
			return err
		},
		"products": func() error {
			_, err := svc.ListSubcategoryProducts(ctx, 1)
			return err
		},
		"search": func() error {
			_, err := svc.Search(ctx, DefaultSearchParams())
			return err
		},
		"by title": func() error {
			_, err := svc.SupermarketIDByTitle(ctx, "Dia")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			requireCode(t, err, pkgerrors.CodeInternal)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestService_ParentCategoryFailureIsInternal(t *testing.T) {
	boom := errors.New("timeout")
	repo := &stubRepository{err: boom, subcategory: &models.Subcategory{ID: 7, CategoryID: 3, Title: "Leche"}}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.ListSubcategoryProducts(context.Background(), 7)
	requireCode(t, err, pkgerrors.CodeInternal)
	assert.ErrorIs(t, err, boom)
}

func TestService_SearchSkipsStoreForEmptyWindow(t *testing.T) {
	repo := &stubRepository{}
	svc, err := NewService(repo)
	require.NoError(t, err)

	rows, err := svc.Search(context.Background(), SearchParams{MaxResults: intPtr(3), Page: 2})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, repo.lookups)
}
