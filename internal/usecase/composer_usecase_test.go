package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mobike/routing-api/internal/domain"
	apperrors "github.com/mobike/routing-api/internal/pkg/errors"
	"github.com/mobike/routing-api/internal/usecase"
)

// MockRouteProvider is a mock of repository.RouteProvider
type MockRouteProvider struct {
	mock.Mock
}

func (m *MockRouteProvider) FetchRoute(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
	mode domain.TravelMode,
	departureTime time.Time,
) (*domain.Route, error) {
	args := m.Called(ctx, origin, destination, mode, departureTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

var (
	testOrigin      = domain.Coordinate{Latitude: 45.4950, Longitude: -73.5780}
	testDestination = domain.Coordinate{Latitude: 45.5700, Longitude: -73.5400}
	testBoarding    = domain.Coordinate{Latitude: 45.5017, Longitude: -73.5673}
	testAlighting   = domain.Coordinate{Latitude: 45.5589, Longitude: -73.5520}
)

func transitStep(departure domain.Coordinate) domain.Step {
	return domain.Step{
		TravelMode: domain.TravelModeTransit,
		TransitDetails: &domain.TransitDetails{
			StopDetails: &domain.TransitStopDetails{
				DepartureStop: &domain.TransitStop{
					Location: domain.Location{LatLng: departure},
				},
			},
		},
	}
}

func discoveryRoute() *domain.Route {
	return &domain.Route{
		DistanceMeters: 99999,
		Duration:       "999s",
		StaticDuration: "999s",
		Legs: []domain.Leg{
			{Steps: []domain.Step{{TravelMode: domain.TravelModeWalk}, transitStep(testBoarding)}},
			{Steps: []domain.Step{transitStep(testAlighting), {TravelMode: domain.TravelModeWalk}}},
		},
	}
}

func TestComposerUseCase_ComposeBimodal(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	startTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	firstMile := &domain.Route{
		DistanceMeters: 1000,
		Duration:       "100s",
		StaticDuration: "90s",
		Legs:           []domain.Leg{{DistanceMeters: 1000}},
	}
	transit := &domain.Route{
		DistanceMeters: 5000,
		Duration:       "600s",
		StaticDuration: "580s",
		Legs:           []domain.Leg{{DistanceMeters: 5000}},
	}
	lastMile := &domain.Route{
		DistanceMeters: 500,
		Duration:       "50.5s",
		StaticDuration: "45s",
		Legs:           []domain.Leg{{DistanceMeters: 500}},
	}

	t.Run("four calls in order with chained departure times", func(t *testing.T) {
		mockProvider := &MockRouteProvider{}
		uc := usecase.NewComposerUseCase(mockProvider, logger)

		transitDepart := startTime.Add(100*time.Second + domain.DepartureLeadTime)
		lastMileDepart := transitDepart.Add(600*time.Second + domain.DepartureLeadTime)

		mockProvider.On("FetchRoute", ctx, testOrigin, testDestination, domain.TravelModeTransit, startTime).
			Return(discoveryRoute(), nil).Once()
		mockProvider.On("FetchRoute", ctx, testOrigin, testBoarding, domain.TravelModeBicycle, startTime).
			Return(firstMile, nil).Once()
		mockProvider.On("FetchRoute", ctx, testBoarding, testAlighting, domain.TravelModeTransit, transitDepart).
			Return(transit, nil).Once()
		mockProvider.On("FetchRoute", ctx, testAlighting, testDestination, domain.TravelModeBicycle, lastMileDepart).
			Return(lastMile, nil).Once()

		result, err := uc.ComposeBimodal(ctx, testOrigin, testDestination, startTime)
		require.NoError(t, err)

		mockProvider.AssertExpectations(t)
		require.Len(t, mockProvider.Calls, 4)

		// strict call order: discovery, first mile, confirm, last mile
		modes := make([]domain.TravelMode, 0, 4)
		for _, call := range mockProvider.Calls {
			modes = append(modes, call.Arguments.Get(3).(domain.TravelMode))
		}
		assert.Equal(t, []domain.TravelMode{
			domain.TravelModeTransit,
			domain.TravelModeBicycle,
			domain.TravelModeTransit,
			domain.TravelModeBicycle,
		}, modes)

		// discovery metrics are discarded, kept legs are aggregated
		assert.Equal(t, 6500, result.DistanceMeters)

		seconds, err := domain.ParseDurationSeconds(result.Duration)
		require.NoError(t, err)
		assert.InDelta(t, 750.5, seconds, 1e-6)
		assert.Equal(t, "715s", result.StaticDuration)

		require.Len(t, result.Legs, 3)
		assert.Equal(t, 1000, result.Legs[0].DistanceMeters)
		assert.Equal(t, 5000, result.Legs[1].DistanceMeters)
		assert.Equal(t, 500, result.Legs[2].DistanceMeters)
	})

	t.Run("discovery failure aborts composition", func(t *testing.T) {
		mockProvider := &MockRouteProvider{}
		uc := usecase.NewComposerUseCase(mockProvider, logger)

		mockProvider.On("FetchRoute", ctx, testOrigin, testDestination, domain.TravelModeTransit, startTime).
			Return(nil, errors.New("upstream down")).Once()

		result, err := uc.ComposeBimodal(ctx, testOrigin, testDestination, startTime)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrCompositionFailed)
		mockProvider.AssertNumberOfCalls(t, "FetchRoute", 1)
	})

	t.Run("walk-only itinerary aborts before first mile", func(t *testing.T) {
		mockProvider := &MockRouteProvider{}
		uc := usecase.NewComposerUseCase(mockProvider, logger)

		walkOnly := &domain.Route{
			Duration: "300s",
			Legs: []domain.Leg{
				{Steps: []domain.Step{{TravelMode: domain.TravelModeWalk}}},
			},
		}
		mockProvider.On("FetchRoute", ctx, testOrigin, testDestination, domain.TravelModeTransit, startTime).
			Return(walkOnly, nil).Once()

		_, err := uc.ComposeBimodal(ctx, testOrigin, testDestination, startTime)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCompositionFailed)
		assert.ErrorIs(t, err, apperrors.ErrNoTransitSegment)
		assert.ErrorIs(t, err, domain.ErrNoTransitSegment)
		mockProvider.AssertNumberOfCalls(t, "FetchRoute", 1)
	})

	t.Run("transit confirm failure skips last mile", func(t *testing.T) {
		mockProvider := &MockRouteProvider{}
		uc := usecase.NewComposerUseCase(mockProvider, logger)

		transitDepart := startTime.Add(100*time.Second + domain.DepartureLeadTime)

		mockProvider.On("FetchRoute", ctx, testOrigin, testDestination, domain.TravelModeTransit, startTime).
			Return(discoveryRoute(), nil).Once()
		mockProvider.On("FetchRoute", ctx, testOrigin, testBoarding, domain.TravelModeBicycle, startTime).
			Return(firstMile, nil).Once()
		mockProvider.On("FetchRoute", ctx, testBoarding, testAlighting, domain.TravelModeTransit, transitDepart).
			Return(nil, errors.New("no transit at this hour")).Once()

		result, err := uc.ComposeBimodal(ctx, testOrigin, testDestination, startTime)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, apperrors.ErrCompositionFailed)
		mockProvider.AssertNumberOfCalls(t, "FetchRoute", 3)
	})

	t.Run("malformed first mile duration aborts", func(t *testing.T) {
		mockProvider := &MockRouteProvider{}
		uc := usecase.NewComposerUseCase(mockProvider, logger)

		broken := &domain.Route{
			DistanceMeters: 1000,
			Duration:       "not-a-duration",
			Legs:           []domain.Leg{{}},
		}

		mockProvider.On("FetchRoute", ctx, testOrigin, testDestination, domain.TravelModeTransit, startTime).
			Return(discoveryRoute(), nil).Once()
		mockProvider.On("FetchRoute", ctx, testOrigin, testBoarding, domain.TravelModeBicycle, startTime).
			Return(broken, nil).Once()

		_, err := uc.ComposeBimodal(ctx, testOrigin, testDestination, startTime)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCompositionFailed)
		assert.ErrorIs(t, err, apperrors.ErrFormat)
		assert.ErrorIs(t, err, domain.ErrMalformedDuration)
		mockProvider.AssertNumberOfCalls(t, "FetchRoute", 2)
	})
}
