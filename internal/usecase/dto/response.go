package dto

import "github.com/mobike/routing-api/internal/domain"

// Strategy - стратегия, построившая выбранный маршрут
type Strategy string

const (
	StrategyBimodal Strategy = "bimodal"
	StrategyCycling Strategy = "cycling"
)

// RoutingResponse - выбранный маршрут и стратегия, которая его построила
type RoutingResponse struct {
	Strategy Strategy      `json:"strategy"`
	Route    *domain.Route `json:"route"`
}
