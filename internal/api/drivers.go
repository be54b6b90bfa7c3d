package api

import (
	"net/http"
	"time"

	"fleet-management/fleetboard/internal/common"
	"fleet-management/fleetboard/internal/constants"
	"fleet-management/fleetboard/internal/models/dtos"
)

// CreateDriver handles POST /api/v1/drivers
func (h *Handlers) CreateDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var input dtos.CreateDriverInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		driver, err := h.deps.Services.Driver.Create(r.Context(), input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityDriver, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDriverCreated, driver, http.StatusCreated)
	}
}

// ListDrivers handles GET /api/v1/drivers
func (h *Handlers) ListDrivers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		drivers, err := h.deps.Services.Driver.List(r.Context())
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityDriver, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDriversFetched, drivers)
	}
}

// GetDriver handles GET /api/v1/drivers/{id}
func (h *Handlers) GetDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		driver, err := h.deps.Services.Driver.GetByID(r.Context(), id)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityDriver, err)
			return
		}
		if driver == nil {
			respondNotFound(w, initTime, constants.MsgDriverNotFound, id)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDriverFetched, driver)
	}
}

// UpdateDriver handles PATCH /api/v1/drivers/{id}
func (h *Handlers) UpdateDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		var input dtos.UpdateDriverInput
		if err := common.DecodeJSONBody(w, r, &input); err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		driver, err := h.deps.Services.Driver.Update(r.Context(), id, input)
		if err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityDriver, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDriverUpdated, driver)
	}
}

// DeleteDriver handles DELETE /api/v1/drivers/{id}
func (h *Handlers) DeleteDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := common.ParseIDParam(r, "id")
		if err != nil {
			respondBadRequest(w, initTime, err)
			return
		}

		if err := h.deps.Services.Driver.Delete(r.Context(), id); err != nil {
			h.respondServiceError(w, r, initTime, constants.EntityDriver, err)
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgDriverDeleted, dtos.DeleteResponse{Success: true})
	}
}
