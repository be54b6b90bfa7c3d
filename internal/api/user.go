package api

import (
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/dtos"
)

// CreateUser handles POST /api/v1/users
func (h *Handlers) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var input dtos.CreateUserInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		user, err := h.deps.Services.User.Create(r.Context(), input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityUser, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUserCreated, user, http.StatusCreated)
	}
}

// ListUsers handles GET /api/v1/users
func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		users, err := h.deps.Services.User.List(r.Context())
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityUser, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUsersFetched, users)
	}
}

// GetUser handles GET /api/v1/users/{id}
func (h *Handlers) GetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		user, err := h.deps.Services.User.GetByID(r.Context(), id)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityUser, err)
			return
		}
		if user == nil {
			respondNotFound(w, initTime, constants.MsgUserNotFound, id)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUserFetched, user)
	}
}

// UpdateUser handles PATCH /api/v1/users/{id}
func (h *Handlers) UpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		var input dtos.UpdateUserInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		user, err := h.deps.Services.User.Update(r.Context(), id, input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityUser, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUserUpdated, user)
	}
}

// DeleteUser handles DELETE /api/v1/users/{id}
func (h *Handlers) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		if err := h.deps.Services.User.Delete(r.Context(), id); err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityUser, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgUserDeleted, dtos.DeleteResponse{Success: true})
	}
}
