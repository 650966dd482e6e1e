package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCB-BookingService/internal/api/handlers"
	"github.com/m04kA/PCB-BookingService/internal/api/middleware"
	"github.com/m04kA/PCB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/PCB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgMissingDate    = "отсутствует параметр date"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound  = "корт не найден"
	msgCourtInactive  = "корт недоступен для бронирования"
	msgCenterNotFound = "центр не найден"
	msgDateInPast     = "дата в прошлом"
	msgDateTooFar     = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtID := vars["courtId"]
	if courtID == "" {
		h.logger.Warn("GET /courts/{id}/available-slots - Missing court ID")
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Дата обязательна
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/available-slots - Missing date: court_id=%s", courtID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Эндпоинт публичный: userID опционален и нужен только для логирования
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID:  userID,
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/available-slots - Court not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrCourtInactive):
			h.logger.Warn("GET /courts/{id}/available-slots - Court inactive: court_id=%s", courtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, getAvailableSlots.ErrCenterNotFound):
			h.logger.Warn("GET /courts/{id}/available-slots - Center not found: court_id=%s", courtID)
			handlers.RespondNotFound(w, msgCenterNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /courts/{id}/available-slots - Date in past: court_id=%s, date=%s", courtID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /courts/{id}/available-slots - Date too far: court_id=%s, date=%s", courtID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/available-slots - Invalid input: court_id=%s, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /courts/{id}/available-slots - Failed to get slots: court_id=%s, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/available-slots - Slots retrieved: court_id=%s, date=%s, count=%d",
		courtID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
