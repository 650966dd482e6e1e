package update_center_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCB-BookingService/internal/api/handlers"
	"github.com/m04kA/PCB-BookingService/internal/api/middleware"
	configService "github.com/m04kA/PCB-BookingService/internal/service/config"
)

const (
	msgInvalidCenterID    = "некорректный ID центра"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCenterNotFound     = "центр не найден"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/centers/{centerId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем centerId из URL
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	if centerID == "" {
		h.logger.Warn("PUT /centers/{id}/config - Missing center ID")
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /centers/{id}/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /centers/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем конфигурацию (сервис проверит права менеджера и лимиты значений)
	result, err := h.service.UpdateConfig(r.Context(), req.ToServiceRequest(centerID, userID))
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrCenterNotFound):
			h.logger.Warn("PUT /centers/{id}/config - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)

		case errors.Is(err, configService.ErrAccessDenied):
			h.logger.Warn("PUT /centers/{id}/config - Access denied: center_id=%s, user_id=%s",
				centerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("PUT /centers/{id}/config - Invalid input: center_id=%s, error=%v", centerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /centers/{id}/config - Failed to update config: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /centers/{id}/config - Config updated: center_id=%s, config_id=%d, user_id=%s",
		centerID, result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
