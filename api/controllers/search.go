package controllers

import (
	"net/http"

	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/api/validators"
	"github.com/angelmondragon/supercompare-api/internal/catalog"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
	"github.com/angelmondragon/supercompare-api/pkg/pagination"
)

// SearchProducts returns one page of products whose title contains q. The
// body is a bare JSON array.
func SearchProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params := parseSearchParams(r)
		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"q":              params.Query,
				"page":           params.Page,
				"order_by_price": params.OrderByPrice,
			})
			logg.Debug(ctx, "catalog.search")
		}

		rows, err := svc.Search(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

func parseSearchParams(r *http.Request) catalog.SearchParams {
	return catalog.SearchParams{
		Query:        r.URL.Query().Get("q"),
		MaxResults:   validators.OptionalPositiveInt(r, "max_results"),
		OrderByPrice: validators.Flag(r, "order_by_price"),
		Page:         validators.PositiveIntOrDefault(r, "page", pagination.DefaultPage),
	}
}
