package get_center_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCB-BookingService/internal/api/handlers"
	"github.com/m04kA/PCB-BookingService/internal/api/middleware"
	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidCenterID = "некорректный ID центра"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgCenterNotFound  = "центр не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/bookings?courtId=&startDate=&endDate=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем centerId из URL
	vars := mux.Vars(r)
	centerID := vars["centerId"]
	if centerID == "" {
		h.logger.Warn("GET /centers/{id}/bookings - Missing center ID")
		handlers.RespondBadRequest(w, msgInvalidCenterID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /centers/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем фильтры из query-параметров
	query := r.URL.Query()

	filter := domain.CenterBookingsFilter{
		CenterID:        centerID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if courtID := query.Get("courtId"); courtID != "" {
		filter.CourtID = &courtID
	}

	if s := query.Get("startDate"); s != "" {
		startDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			h.logger.Warn("GET /centers/{id}/bookings - Invalid startDate %q: %v", s, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.StartDate = &startDate
	}

	if s := query.Get("endDate"); s != "" {
		endDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			h.logger.Warn("GET /centers/{id}/bookings - Invalid endDate %q: %v", s, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.EndDate = &endDate
	}

	if s := query.Get("status"); s != "" {
		status := domain.BookingStatus(s)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusPaid,
			domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow:
			filter.Status = &status
		default:
			h.logger.Warn("GET /centers/{id}/bookings - Invalid status: %s", s)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	// Получаем бронирования (сервис проверит права менеджера)
	result, err := h.service.GetCenterBookings(r.Context(), &models.CenterBookingsRequest{
		RequestedBy: userID,
		Filter:      filter,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{id}/bookings - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /centers/{id}/bookings - Access denied: center_id=%s, user_id=%s",
				centerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /centers/{id}/bookings - Invalid input: center_id=%s, error=%v", centerID, err)
			handlers.RespondBadRequest(w, msgInvalidCenterID)

		default:
			h.logger.Error("GET /centers/{id}/bookings - Failed to get bookings: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /centers/{id}/bookings - Bookings retrieved: center_id=%s, user_id=%s, count=%d",
		centerID, userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}
