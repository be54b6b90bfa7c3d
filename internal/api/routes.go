package api

import (
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/dtos"
)

// CreateRoute handles POST /api/v1/routes
func (h *Handlers) CreateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var input dtos.CreateRouteInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		route, err := h.deps.Services.Route.Create(r.Context(), input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityRoute, err)
			return
		}

		if h.deps.Metrics != nil {
			h.deps.Metrics.RoutesCreatedTotal.Inc()
		}
		common.RespondSuccess(w, initTime, constants.MsgRouteCreated, route, http.StatusCreated)
	}
}

// ListRoutes handles GET /api/v1/routes. Each route carries its driver.
func (h *Handlers) ListRoutes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		routes, err := h.deps.Services.Route.List(r.Context())
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityRoute, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRoutesFetched, routes)
	}
}

// GetRoute handles GET /api/v1/routes/{id}
func (h *Handlers) GetRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		route, err := h.deps.Services.Route.GetByID(r.Context(), id)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityRoute, err)
			return
		}
		if route == nil {
			respondNotFound(w, initTime, constants.MsgRouteNotFound, id)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRouteFetched, route)
	}
}

// UpdateRoute handles PATCH /api/v1/routes/{id}
func (h *Handlers) UpdateRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		var input dtos.UpdateRouteInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		route, err := h.deps.Services.Route.Update(r.Context(), id, input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityRoute, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRouteUpdated, route)
	}
}

// DeleteRoute handles DELETE /api/v1/routes/{id}
func (h *Handlers) DeleteRoute() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		if err := h.deps.Services.Route.Delete(r.Context(), id); err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityRoute, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRouteDeleted, dtos.DeleteResponse{Success: true})
	}
}
