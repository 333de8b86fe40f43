package controllers

import (
	"net/http"

	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/internal/catalog"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
)

// ListPlaces returns every supermarket.
func ListPlaces(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		resp, err := svc.ListPlaces(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
