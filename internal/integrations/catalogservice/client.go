package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService (каталог центров и кортов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCourt получает корт по ID
func (c *Client) GetCourt(ctx context.Context, courtID string) (*Court, error) {
	url := fmt.Sprintf("%s/internal/courts/%s", c.baseURL, courtID)

	var court Court
	if err := c.getJSON(ctx, url, &court, ErrCourtNotFound); err != nil {
		return nil, err
	}

	return &court, nil
}

// GetCenter получает центр по ID (включая расписание работы и менеджера)
func (c *Client) GetCenter(ctx context.Context, centerID string) (*Center, error) {
	url := fmt.Sprintf("%s/internal/centers/%s", c.baseURL, centerID)

	var center Center
	if err := c.getJSON(ctx, url, &center, ErrCenterNotFound); err != nil {
		return nil, err
	}

	return &center, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// ScheduleForDay возвращает расписание работы центра на день недели указанной даты
func (c *Center) ScheduleForDay(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return c.OpeningHours.Monday
	case time.Tuesday:
		return c.OpeningHours.Tuesday
	case time.Wednesday:
		return c.OpeningHours.Wednesday
	case time.Thursday:
		return c.OpeningHours.Thursday
	case time.Friday:
		return c.OpeningHours.Friday
	case time.Saturday:
		return c.OpeningHours.Saturday
	case time.Sunday:
		return c.OpeningHours.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}
