package domain

import (
	"errors"
	"fmt"
)

// ErrNoTransitSegment is returned when a transit itinerary has a leg with no
// transit steps left after walking connectors are stripped.
var ErrNoTransitSegment = errors.New("no transit segment")

// StripWalkSteps возвращает копию ног маршрута без пешеходных шагов.
// Исходный маршрут не изменяется: пешеходные связки не несут координат,
// пригодных для перестроения велосипедных ног.
func StripWalkSteps(legs []Leg) []Leg {
	stripped := make([]Leg, len(legs))
	for i, leg := range legs {
		steps := make([]Step, 0, len(leg.Steps))
		for _, step := range leg.Steps {
			if step.TravelMode != TravelModeWalk {
				steps = append(steps, step)
			}
		}
		stripped[i] = leg
		stripped[i].Steps = steps
	}
	return stripped
}

// ExtractTransitEndpoints находит координаты посадки и высадки транзитной
// части маршрута: посадка - остановка отправления первого транзитного шага
// первой ноги, высадка - остановка отправления последнего транзитного шага
// последней ноги.
//
// Для высадки намеренно используется departureStop, а не arrivalStop -
// поведение согласовано с продуктом, менять без подтверждения нельзя.
func ExtractTransitEndpoints(route *Route) (boarding, alighting Coordinate, err error) {
	if route == nil || len(route.Legs) == 0 {
		return Coordinate{}, Coordinate{}, fmt.Errorf("%w: route has no legs", ErrNoTransitSegment)
	}

	legs := StripWalkSteps(route.Legs)
	for i, leg := range legs {
		if len(leg.Steps) == 0 {
			return Coordinate{}, Coordinate{}, fmt.Errorf("%w: leg %d has no transit steps", ErrNoTransitSegment, i)
		}
	}

	firstStep := legs[0].Steps[0]
	lastLeg := legs[len(legs)-1]
	lastStep := lastLeg.Steps[len(lastLeg.Steps)-1]

	boarding, err = departureStopLocation(firstStep)
	if err != nil {
		return Coordinate{}, Coordinate{}, err
	}
	alighting, err = departureStopLocation(lastStep)
	if err != nil {
		return Coordinate{}, Coordinate{}, err
	}

	return boarding, alighting, nil
}

func departureStopLocation(step Step) (Coordinate, error) {
	if step.TransitDetails == nil || step.TransitDetails.StopDetails == nil || step.TransitDetails.StopDetails.DepartureStop == nil {
		return Coordinate{}, fmt.Errorf("%w: transit step has no departure stop", ErrNoTransitSegment)
	}
	return step.TransitDetails.StopDetails.DepartureStop.Location.LatLng, nil
}
