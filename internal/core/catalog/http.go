// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{slug}", handler.getCategory)
	router.Get("/languages", handler.listLanguages)
	router.Get("/fee-ranges", handler.listFeeRanges)
	router.Get("/price-bands", handler.listPriceBands)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Categories())
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	category, ok := CategoryBySlug(chi.URLParam(request, "slug"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Category"))
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Languages())
}

func (handler *Handler) listFeeRanges(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, FeeRanges())
}

func (handler *Handler) listPriceBands(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, PriceBands())
}
