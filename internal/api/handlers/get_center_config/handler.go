package get_center_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCB-BookingService/internal/api/handlers"
	configService "github.com/m04kA/PCB-BookingService/internal/service/config"
	"github.com/m04kA/PCB-BookingService/internal/service/config/models"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
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

// Handle GET /api/v1/centers/{centerId}/config?courtId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем centerId из URL
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	if centerID == "" {
		h.logger.Warn("GET /centers/{id}/config - Missing center ID")
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	// courtId опционален: без него возвращается конфигурация центра
	var courtID *string
	if c := r.URL.Query().Get("courtId"); c != "" {
		courtID = &c
	}

	// Сервис вернёт дефолтную конфигурацию, если своя не задана
	result, err := h.service.GetConfig(r.Context(), &models.GetConfigRequest{
		CenterID: centerID,
		CourtID:  courtID,
	})
	if err != nil {
		switch {
		case errors.Is(err, configService.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/config - Invalid input: center_id=%s, error=%v", centerID, err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id}/config - Failed to get config: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/config - Config retrieved: center_id=%s", centerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
