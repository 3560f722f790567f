package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DepartureLeadTime - фиксированный запас перед отправлением, добавляемый
// при пересчете длительности в timestamp для следующего вызова провайдера.
// Компенсирует дрейф часов и сетевую задержку между построением и отправлением.
const DepartureLeadTime = 5 * time.Second

// ErrMalformedDuration is returned when a provider duration string cannot be parsed.
var ErrMalformedDuration = errors.New("malformed duration")

// ParseDurationSeconds разбирает провайдерскую строку длительности вида "123.4s"
// в число секунд.
func ParseDurationSeconds(s string) (float64, error) {
	trimmed := strings.TrimSuffix(s, "s")
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	return seconds, nil
}

// FormatDurationSeconds сериализует секунды обратно в провайдерский формат "<секунды>s".
func FormatDurationSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}

// SumDurations суммирует несколько строк длительности, сохраняя формат.
func SumDurations(durations ...string) (string, error) {
	var total float64
	for _, d := range durations {
		seconds, err := ParseDurationSeconds(d)
		if err != nil {
			return "", err
		}
		total += seconds
	}
	return FormatDurationSeconds(total), nil
}

// Advance вычисляет момент отправления следующей ноги: база плюс прошедшее
// время плюс DepartureLeadTime.
func Advance(base time.Time, elapsedSeconds float64) time.Time {
	elapsed := time.Duration(elapsedSeconds * float64(time.Second))
	return base.Add(elapsed).Add(DepartureLeadTime)
}
