// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/constants"
	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
	"github.com/taibuivan/artistly/pkg/pagination"
)

// Handler exposes the artist directory over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtists)
	router.Get("/featured", handler.featuredArtists)
	router.Get("/stats", handler.stats)
	router.Get("/{id}", handler.getArtist)

	router.Post("/", handler.createArtist)
	router.Patch("/{id}", handler.updateArtist)
	router.Delete("/{id}", handler.deleteArtist)
}

// CriteriaFromRequest maps the listing query string onto filter criteria.
// Values are passed through untouched apart from the "all" and "any" UI
// sentinels, which mean "no filter".
func CriteriaFromRequest(request *http.Request) Criteria {
	criteria := Criteria{
		Category:   requestutil.FirstQuery(request, "category"),
		Location:   requestutil.FirstQuery(request, "location"),
		PriceRange: requestutil.FirstQuery(request, "price", "price_range"),
		Search:     requestutil.FirstQuery(request, "q", "search"),
	}

	if criteria.Category == constants.FilterAllCategories {
		criteria.Category = ""
	}
	if criteria.PriceRange == constants.FilterAnyPrice {
		criteria.PriceRange = ""
	}
	return criteria
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	artists, total := handler.service.ListArtists(request.Context(), CriteriaFromRequest(request), paginationParams)

	respond.Paginated(writer, artists, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) featuredArtists(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.FeaturedArtists(request.Context()))
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Stats(request.Context()))
}

func (handler *Handler) getArtist(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetArtist(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	var input Artist

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArtist(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	var patch Patch

	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateArtist(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteArtist(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
