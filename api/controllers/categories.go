package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/api/validators"
	"github.com/angelmondragon/supercompare-api/internal/catalog"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
)

// ListCategories returns the categories of one supermarket. A non-numeric id
// matches nothing, so it yields an empty list like an unknown one.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		supermarketID, ok := validators.ParsePathID(chi.URLParam(r, "id_supermercado"))
		if !ok {
			responses.WriteSuccess(w, catalog.CategoriesResponse{Categories: []catalog.CategoryDTO{}})
			return
		}

		resp, err := svc.ListCategories(r.Context(), supermarketID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}

// ListSubcategories returns a category together with its subcategories.
func ListSubcategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categoryID, ok := validators.ParsePathID(chi.URLParam(r, "id_categoria"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, catalog.CategoryNotFound())
			return
		}

		resp, err := svc.ListSubcategories(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
