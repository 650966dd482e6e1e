package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PCB-BookingService/internal/api/handlers"
	"github.com/m04kA/PCB-BookingService/internal/api/middleware"
	"github.com/m04kA/PCB-BookingService/internal/domain"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings"
	"github.com/m04kA/PCB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgInvalidLimit  = "некорректное значение limit"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/bookings?status=&limit=&grouped=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	targetUserID := vars["userId"]
	if targetUserID == "" {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID in path")
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	requestedBy, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем query-параметры
	query := r.URL.Query()

	var status *domain.BookingStatus
	if s := query.Get("status"); s != "" {
		parsed, ok := parseStatus(s)
		if !ok {
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: %s", s)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	limit := 0
	if l := query.Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /users/{id}/bookings - Invalid limit: %s", l)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	grouped := query.Get("grouped") == "true"

	serviceReq := &models.UserBookingsRequest{
		RequestedBy: requestedBy,
		UserID:      targetUserID,
		Status:      status,
		Limit:       limit,
	}

	// grouped=true возвращает бронирования, разбитые на upcoming / past / cancelled
	if grouped {
		result, err := h.service.GetUserBookingsGrouped(r.Context(), serviceReq)
		if err != nil {
			h.respondServiceError(w, targetUserID, requestedBy, err)
			return
		}

		h.logger.Info("GET /users/{id}/bookings - Grouped bookings retrieved: user_id=%s, upcoming=%d, past=%d, cancelled=%d",
			targetUserID, len(result.Upcoming), len(result.Past), len(result.Cancelled))
		handlers.RespondJSON(w, http.StatusOK, FromGrouped(result))
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, targetUserID, requestedBy, err)
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Bookings retrieved: user_id=%s, count=%d", targetUserID, len(result))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(result))
}

func (h *Handler) respondServiceError(w http.ResponseWriter, targetUserID, requestedBy string, err error) {
	switch {
	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /users/{id}/bookings - Access denied: target=%s, requested_by=%s",
			targetUserID, requestedBy)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%s, error=%v",
			targetUserID, err)
		handlers.RespondInternalError(w)
	}
}

// parseStatus валидирует статус из query-параметра
func parseStatus(s string) (domain.BookingStatus, bool) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusPaid,
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow:
		return status, true
	}
	return "", false
}
