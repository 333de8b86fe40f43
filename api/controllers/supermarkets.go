package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/internal/catalog"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
)

// SupermarketIDByTitle resolves a supermarket id from its exact title.
func SupermarketIDByTitle(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		resp, err := svc.SupermarketIDByTitle(r.Context(), pathTitle(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}

// pathTitle returns the decoded titulo segment. chi matches on RawPath when
// the request carries escaped slashes, leaving the parameter encoded.
func pathTitle(r *http.Request) string {
	raw := chi.URLParam(r, "titulo")
	if r.URL.RawPath == "" {
		return raw
	}
	if title, err := url.PathUnescape(raw); err == nil {
		return title
	}
	return raw
}
