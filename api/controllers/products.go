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

// ListSubcategoryProducts returns a subcategory with its parent category and products.
func ListSubcategoryProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		subcategoryID, ok := validators.ParsePathID(chi.URLParam(r, "id_subcategoria"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, catalog.SubcategoryNotFound())
			return
		}

		resp, err := svc.ListSubcategoryProducts(r.Context(), subcategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
