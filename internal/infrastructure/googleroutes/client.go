package googleroutes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mobike/routing-api/internal/config"
	"github.com/mobike/routing-api/internal/domain"
	"github.com/mobike/routing-api/internal/domain/repository"
	"github.com/mobike/routing-api/internal/pkg/errors"
	"go.uber.org/zap"
)

// fieldMask ограничивает ответ провайдера ровно теми полями, которые нужны
// композеру: агрегаты маршрута, ноги и шаги с транзитными метаданными.
// Polyline на уровне ноги нужен для склейки мультимодального результата.
var fieldMask = []string{
	"routes.distanceMeters",
	"routes.duration",
	"routes.staticDuration",
	"routes.legs.startLocation",
	"routes.legs.endLocation",
	"routes.legs.distanceMeters",
	"routes.legs.duration",
	"routes.legs.staticDuration",
	"routes.legs.polyline",
	"routes.legs.steps.startLocation",
	"routes.legs.steps.endLocation",
	"routes.legs.steps.distanceMeters",
	"routes.legs.steps.staticDuration",
	"routes.legs.steps.polyline",
	"routes.legs.steps.transitDetails",
	"routes.legs.steps.travelMode",
}

type waypoint struct {
	Location domain.Location `json:"location"`
}

// computeRoutesRequest - тело запроса Routes API v2.
// Альтернативные маршруты выключены, локаль и единицы фиксированы: числовые
// поля, от которых зависит композер, от них не зависят.
type computeRoutesRequest struct {
	Origin                   waypoint          `json:"origin"`
	Destination              waypoint          `json:"destination"`
	TravelMode               domain.TravelMode `json:"travelMode"`
	DepartureTime            string            `json:"departureTime"`
	ComputeAlternativeRoutes bool              `json:"computeAlternativeRoutes"`
	LanguageCode             string            `json:"languageCode"`
	Units                    string            `json:"units"`
}

type computeRoutesResponse struct {
	Routes []domain.Route `json:"routes"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	fieldMask  string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Google Routes API
func NewClient(cfg *config.ProviderConfig, logger *zap.Logger) repository.RouteProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		fieldMask: strings.Join(fieldMask, ","),
		logger:    logger,
	}
}

// FetchRoute запрашивает одномодальный маршрут у провайдера.
// Один исходящий вызов без повторов: любая ошибка сразу уходит вызывающему.
func (c *client) FetchRoute(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	mode domain.TravelMode,
	departureTime time.Time,
) (*domain.Route, error) {
	reqBody := computeRoutesRequest{
		Origin:                   waypoint{Location: domain.Location{LatLng: origin}},
		Destination:              waypoint{Location: domain.Location{LatLng: destination}},
		TravelMode:               mode,
		DepartureTime:            departureTime.UTC().Format(time.RFC3339),
		ComputeAlternativeRoutes: false,
		LanguageCode:             "en",
		Units:                    "IMPERIAL",
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug("Calling routing provider",
		zap.String("travel_mode", string(mode)),
		zap.String("departure_time", reqBody.DepartureTime))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", c.fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", errors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Routing provider returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: status %d", errors.ErrProvider, resp.StatusCode)
	}

	var routesResp computeRoutesResponse
	if err := json.NewDecoder(resp.Body).Decode(&routesResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", errors.ErrParse, err)
	}

	if len(routesResp.Routes) == 0 {
		c.logger.Error("Routing provider returned no routes",
			zap.String("travel_mode", string(mode)))
		return nil, fmt.Errorf("%w: response has no routes", errors.ErrParse)
	}

	route := &routesResp.Routes[0]
	if route.Duration == "" || len(route.Legs) == 0 {
		c.logger.Error("Routing provider returned incomplete route",
			zap.String("travel_mode", string(mode)),
			zap.Int("legs", len(route.Legs)))
		return nil, fmt.Errorf("%w: route is missing duration or legs", errors.ErrParse)
	}

	c.logger.Debug("Routing provider call successful",
		zap.String("travel_mode", string(mode)),
		zap.Int("distance_meters", route.DistanceMeters),
		zap.String("duration", route.Duration))

	return route, nil
}
