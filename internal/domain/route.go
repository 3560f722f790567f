package domain

// TravelMode - режим передвижения, как его возвращает провайдер маршрутов
type TravelMode string

const (
	TravelModeWalk    TravelMode = "WALK"
	TravelModeBicycle TravelMode = "BICYCLE"
	TravelModeTransit TravelMode = "TRANSIT"
)

// Coordinate - географическая точка (WGS84)
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location wraps a coordinate the way the routing provider does.
type Location struct {
	LatLng Coordinate `json:"latLng"`
}

// Polyline - закодированная геометрия сегмента
type Polyline struct {
	EncodedPolyline string `json:"encodedPolyline,omitempty"`
}

// TransitStop - остановка общественного транспорта
type TransitStop struct {
	Name     string   `json:"name,omitempty"`
	Location Location `json:"location"`
}

// TransitStopDetails - остановки посадки и высадки для транзитного шага
type TransitStopDetails struct {
	DepartureStop *TransitStop `json:"departureStop,omitempty"`
	ArrivalStop   *TransitStop `json:"arrivalStop,omitempty"`
}

// TransitLine - информация о линии (автобус, метро и т.д.)
type TransitLine struct {
	Name      string `json:"name,omitempty"`
	ShortName string `json:"nameShort,omitempty"`
	Vehicle   string `json:"vehicle,omitempty"`
}

// TransitDetails - транзитные метаданные шага
type TransitDetails struct {
	StopDetails *TransitStopDetails `json:"stopDetails,omitempty"`
	TransitLine *TransitLine        `json:"transitLine,omitempty"`
	StopCount   int                 `json:"stopCount,omitempty"`
}

// Step - минимальная единица ноги маршрута: одна улица или одна поездка
type Step struct {
	StartLocation  *Location       `json:"startLocation,omitempty"`
	EndLocation    *Location       `json:"endLocation,omitempty"`
	DistanceMeters int             `json:"distanceMeters,omitempty"`
	StaticDuration string          `json:"staticDuration,omitempty"`
	Polyline       *Polyline       `json:"polyline,omitempty"`
	TransitDetails *TransitDetails `json:"transitDetails,omitempty"`
	TravelMode     TravelMode      `json:"travelMode,omitempty"`
}

// Leg - непрерывный сегмент маршрута в одном режиме передвижения
type Leg struct {
	StartLocation  *Location `json:"startLocation,omitempty"`
	EndLocation    *Location `json:"endLocation,omitempty"`
	DistanceMeters int       `json:"distanceMeters,omitempty"`
	Duration       string    `json:"duration,omitempty"`
	StaticDuration string    `json:"staticDuration,omitempty"`
	Polyline       *Polyline `json:"polyline,omitempty"`
	Steps          []Step    `json:"steps,omitempty"`
}

// Route - результат одного вызова провайдера и единица ответа сервиса.
// Duration и StaticDuration хранятся в провайдерском формате "<секунды>s".
type Route struct {
	DistanceMeters int    `json:"distanceMeters"`
	Duration       string `json:"duration"`
	StaticDuration string `json:"staticDuration"`
	Legs           []Leg  `json:"legs,omitempty"`
}

// MergeRoutes объединяет несколько одномодальных маршрутов в один мультимодальный:
// расстояния и длительности суммируются, ноги конкатенируются в порядке следования.
func MergeRoutes(routes ...*Route) (*Route, error) {
	merged := &Route{}

	durations := make([]string, 0, len(routes))
	staticDurations := make([]string, 0, len(routes))

	for _, r := range routes {
		merged.DistanceMeters += r.DistanceMeters
		durations = append(durations, r.Duration)
		staticDurations = append(staticDurations, r.StaticDuration)
		merged.Legs = append(merged.Legs, r.Legs...)
	}

	duration, err := SumDurations(durations...)
	if err != nil {
		return nil, err
	}
	staticDuration, err := SumDurations(staticDurations...)
	if err != nil {
		return nil, err
	}

	merged.Duration = duration
	merged.StaticDuration = staticDuration

	return merged, nil
}
