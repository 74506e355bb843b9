package services_test

import (
	"context"
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLegEstimator struct{ mock.Mock }

func (m *MockLegEstimator) EstimateMinutes(ctx context.Context, from, to kernel.Location) (int, bool) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Bool(1)
}

func routedOrders(t *testing.T, services ...int) []*order.Order {
	t.Helper()
	s := newSnapshot(t, len(services), 0)
	routeID := kernel.NewUUID()
	out := make([]*order.Order, 0, len(services))
	for i, minutes := range services {
		o, err := order.RestoreOrder(
			s.orders[i].ID(), s.orders[i].OrgID(), "Stop", s.orders[i].Location(),
			5, minutes, order.Assigned, &routeID, i,
		)
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func TestETAEstimator_SumsServiceAndLegs(t *testing.T) {
	ctx := t.Context()
	stops := routedOrders(t, 10, 5, 7)
	legs := new(MockLegEstimator)
	legs.On("EstimateMinutes", ctx, stops[0].Location(), stops[1].Location()).Return(12, true).Once()
	legs.On("EstimateMinutes", ctx, stops[1].Location(), stops[2].Location()).Return(8, true).Once()

	eta := services.NewETAEstimator(legs).RemainingMinutes(ctx, stops)

	assert.Equal(t, 10+5+7+12+8, eta)
	legs.AssertExpectations(t)
}

func TestETAEstimator_SkipsDeliveredStops(t *testing.T) {
	ctx := t.Context()
	stops := routedOrders(t, 10, 5, 7)
	require.NoError(t, stops[1].MarkDelivered())
	legs := new(MockLegEstimator)
	legs.On("EstimateMinutes", ctx, stops[0].Location(), stops[2].Location()).Return(20, true).Once()

	eta := services.NewETAEstimator(legs).RemainingMinutes(ctx, stops)

	assert.Equal(t, 10+7+20, eta)
	legs.AssertExpectations(t)
}

func TestETAEstimator_UnknownLegCountsAsZero(t *testing.T) {
	ctx := t.Context()
	stops := routedOrders(t, 3, 4)
	legs := new(MockLegEstimator)
	legs.On("EstimateMinutes", ctx, mock.Anything, mock.Anything).Return(0, false).Once()

	assert.Equal(t, 7, services.NewETAEstimator(legs).RemainingMinutes(ctx, stops))
}

func TestETAEstimator_NothingRemaining(t *testing.T) {
	ctx := t.Context()
	stops := routedOrders(t, 3, 4)
	for _, o := range stops {
		require.NoError(t, o.MarkDelivered())
	}
	legs := new(MockLegEstimator)

	assert.Zero(t, services.NewETAEstimator(legs).RemainingMinutes(ctx, stops))
	assert.Zero(t, services.NewETAEstimator(legs).RemainingMinutes(ctx, nil))
	legs.AssertNotCalled(t, "EstimateMinutes", mock.Anything, mock.Anything, mock.Anything)
}

func TestETAEstimator_SingleStopHasNoLeg(t *testing.T) {
	stops := routedOrders(t, 9)
	legs := new(MockLegEstimator)

	assert.Equal(t, 9, services.NewETAEstimator(legs).RemainingMinutes(t.Context(), stops))
	legs.AssertNotCalled(t, "EstimateMinutes", mock.Anything, mock.Anything, mock.Anything)
}
