package adaptor

import (
	"encoding/json"
	"net/http"

	"resort-booking/internal/dto/request"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type DutyHandler struct {
	service usecase.DutyService
	log     *zap.Logger
}

func NewDutyHandler(service usecase.DutyService, log *zap.Logger) *DutyHandler {
	return &DutyHandler{
		service: service,
		log:     log.With(zap.String("handler", "duty")),
	}
}

// Assign handles POST /api/admin/duties (admin)
func (h *DutyHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req request.DutyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Assign(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "success", resp)
}

// List handles GET /api/duties (staff)
func (h *DutyHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context(), pageParams(r))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Toggle handles POST /api/duties/{id}/toggle (staff)
func (h *DutyHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ToggleCompleted(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/duties/{id} (admin)
func (h *DutyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.DutyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Delete handles DELETE /api/admin/duties/{id} (admin)
func (h *DutyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
