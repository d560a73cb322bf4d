package adaptor

import (
	"encoding/json"
	"net/http"

	"resort-booking/internal/dto/request"
	"resort-booking/internal/usecase"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type SettingHandler struct {
	service usecase.SettingService
	log     *zap.Logger
}

func NewSettingHandler(service usecase.SettingService, log *zap.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		log:     log.With(zap.String("handler", "setting")),
	}
}

// Get handles GET /api/admin/settings (admin)
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Update handles PUT /api/admin/settings (admin)
func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}
