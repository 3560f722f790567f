package dto

// Point - координаты точки
type Point struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RoutingRequest - запрос на построение маршрута.
// Origin и Destination - указатели: нулевая точка (0,0) - валидные координаты,
// отличить отсутствующее поле от нулевого значения иначе нельзя.
// DepartureTime - RFC3339; если не указано, используется момент обработки запроса.
type RoutingRequest struct {
	Origin        *Point `json:"origin" validate:"required"`
	Destination   *Point `json:"destination" validate:"required"`
	DepartureTime string `json:"departure_time,omitempty" validate:"omitempty"`
}
