package catalog

import "github.com/angelmondragon/supercompare-api/pkg/db/models"

// PlaceDTO is a supermarket as listed by /api/places.
type PlaceDTO struct {
	ID          int64   `json:"id_supermercado"`
	Title       string  `json:"titulo"`
	Description *string `json:"descripcion"`
	Image       *string `json:"imagen"`
}

type PlacesResponse struct {
	Places []PlaceDTO `json:"places"`
}

type CategoryDTO struct {
	ID    int64  `json:"id_categoria"`
	Title string `json:"titulo"`
}

type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categorias"`
}

type SubcategoryDTO struct {
	ID    int64  `json:"id_subcategoria"`
	Title string `json:"titulo"`
}

type SubcategoriesResponse struct {
	Category      CategoryDTO      `json:"categoria"`
	Subcategories []SubcategoryDTO `json:"subcategorias"`
}

// ProductDTO is a product as listed inside its subcategory.
type ProductDTO struct {
	ID            int64    `json:"id_producto"`
	SupermarketID int64    `json:"id_supermercado"`
	Title         *string  `json:"titulo"`
	Price         *float64 `json:"precio"`
	PricePerKilo  *float64 `json:"precioporkilo"`
	Image         *string  `json:"imagen"`
}

type SubcategoryProductsResponse struct {
	Category    CategoryDTO    `json:"categoria"`
	Subcategory SubcategoryDTO `json:"subcategoria"`
	Products    []ProductDTO   `json:"productos"`
}

// SearchResultDTO is a search hit; SupermarketImage is null when the owning
// supermarket cannot be resolved.
type SearchResultDTO struct {
	ID               int64    `json:"id_producto"`
	SupermarketID    int64    `json:"id_supermercado"`
	Title            *string  `json:"titulo"`
	Price            *float64 `json:"precio"`
	Image            *string  `json:"imagen"`
	SupermarketImage *string  `json:"img_supermercado"`
}

type SupermarketIDResponse struct {
	ID int64 `json:"id_supermercado"`
}

func placeFromModel(m models.Supermarket) PlaceDTO {
	return PlaceDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
	}
}

func categoryFromModel(m models.Category) CategoryDTO {
	return CategoryDTO{ID: m.ID, Title: m.Title}
}

func subcategoryFromModel(m models.Subcategory) SubcategoryDTO {
	return SubcategoryDTO{ID: m.ID, Title: m.Title}
}

func productFromModel(m models.Product) ProductDTO {
	return ProductDTO{
		ID:            m.ID,
		SupermarketID: m.SupermarketID,
		Title:         m.Title,
		Price:         m.Price,
		PricePerKilo:  m.PricePerKilo,
		Image:         m.Image,
	}
}

func searchResultFromModel(m models.Product, supermarketImage *string) SearchResultDTO {
	return SearchResultDTO{
		ID:               m.ID,
		SupermarketID:    m.SupermarketID,
		Title:            m.Title,
		Price:            m.Price,
		Image:            m.Image,
		SupermarketImage: supermarketImage,
	}
}

// mapAll maps rows through fn, always returning a non-nil slice so empty lists
// encode as [] rather than null.
func mapAll[M any, D any](rows []M, fn func(M) D) []D {
	out := make([]D, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}
