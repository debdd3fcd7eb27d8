// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.register)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var form Form

	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Register(request.Context(), form)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}
