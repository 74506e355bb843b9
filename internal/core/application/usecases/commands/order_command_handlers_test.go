package commands_test

import (
	"errors"
	"testing"

	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestOptionalLocation(t *testing.T) {
	loc, err := commands.OptionalLocation(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, loc)

	_, err = commands.OptionalLocation(ptr(1.0), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.OptionalLocation(nil, ptr(1.0))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.OptionalLocation(ptr(91.0), ptr(1.0))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	loc, err = commands.OptionalLocation(ptr(10.0), ptr(20.0))
	require.NoError(t, err)
	assert.InDelta(t, 10.0, loc.Lat(), 1e-9)
	assert.InDelta(t, 20.0, loc.Lon(), 1e-9)
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	scope := newScope(t)
	loc := newLocation(t, 1, 1)

	testCases := []struct {
		name     string
		address  string
		location *kernel.Location
		weight   int
		service  int
		status   string
		sentinel error
	}{
		{"no address no coordinates", " ", nil, 5, 10, "", errs.ErrValueIsRequired},
		{"zero weight", "Main St", nil, 0, 10, "", commands.ErrWeightIsInvalid},
		{"negative service", "Main St", nil, 5, -1, "", commands.ErrServiceDurationIsInvalid},
		{"assigned status", "Main St", &loc, 5, 10, "ASSIGNED", errs.ErrValueIsInvalid},
		{"garbage status", "Main St", &loc, 5, 10, "LOST", errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(scope, kernel.NewUUID(), tc.address, tc.location,
				tc.weight, tc.service, tc.status)
			require.ErrorIs(t, err, tc.sentinel)
		})
	}

	cmd, err := commands.NewCreateOrderCommand(scope, kernel.NewUUID(), " Main St ", nil, 5, 0, "unassigned")
	require.NoError(t, err)
	assert.Equal(t, "Main St", cmd.Address())
}

func orderUoW(t *testing.T, scope tenant.Scope, addErr error) (*MockOrderUoWFactory, *MockUoW, *MockOrderRepository) {
	t.Helper()
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(addErr).Once()
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	if addErr == nil {
		uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create", scope).Return(uow).Once()
	return factory, uow, repo
}

func TestCreateOrderCommandHandler_CoordinateResolution(t *testing.T) {
	scope := newScope(t)
	given := newLocation(t, 10, 10)
	resolved := newLocation(t, 52.5, 13.4)

	testCases := []struct {
		name            string
		address         string
		location        *kernel.Location
		setup           func(g *MockGeocoder)
		expectedAddress string
		expectedLoc     kernel.Location
	}{
		{
			name:            "coordinates with address kept as is",
			address:         "Dock 4",
			location:        &given,
			setup:           func(*MockGeocoder) {},
			expectedAddress: "Dock 4",
			expectedLoc:     given,
		},
		{
			name:     "coordinates backfill address",
			location: &given,
			setup: func(g *MockGeocoder) {
				g.On("ReverseGeocode", mock.Anything, given).Return("10.00000, 10.00000").Once()
			},
			expectedAddress: "10.00000, 10.00000",
			expectedLoc:     given,
		},
		{
			name:    "address forward geocoded",
			address: "Unter den Linden",
			setup: func(g *MockGeocoder) {
				g.On("ForwardGeocode", mock.Anything, "Unter den Linden").
					Return(ports.GeocodeResult{Location: resolved, Address: "Unter den Linden, Berlin"}, nil).Once()
			},
			expectedAddress: "Unter den Linden, Berlin",
			expectedLoc:     resolved,
		},
		{
			name:    "blank resolved address keeps input",
			address: "Unter den Linden",
			setup: func(g *MockGeocoder) {
				g.On("ForwardGeocode", mock.Anything, "Unter den Linden").
					Return(ports.GeocodeResult{Location: resolved}, nil).Once()
			},
			expectedAddress: "Unter den Linden",
			expectedLoc:     resolved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			geocoder := new(MockGeocoder)
			tc.setup(geocoder)
			factory, uow, repo := orderUoW(t, scope, nil)
			cmd, err := commands.NewCreateOrderCommand(scope, kernel.NewUUID(), tc.address, tc.location, 5, 10, "")
			require.NoError(t, err)

			h := commands.NewCreateOrderCommandHandler(factory, geocoder)
			o, err := h.Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedAddress, o.Address())
			assert.Equal(t, tc.expectedLoc, o.Location())
			assert.Equal(t, order.Unassigned, o.Status())
			assert.Nil(t, o.RouteID())
			geocoder.AssertExpectations(t)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestCreateOrderCommandHandler_GeocodingFailureIsValidation(t *testing.T) {
	scope := newScope(t)
	geocoder := new(MockGeocoder)
	geocoder.On("ForwardGeocode", mock.Anything, "Atlantis").
		Return(ports.GeocodeResult{}, errs.NewObjectNotFoundError("address", "Atlantis")).Once()
	factory := new(MockOrderUoWFactory)

	cmd, err := commands.NewCreateOrderCommand(scope, kernel.NewUUID(), "Atlantis", nil, 5, 10, "")
	require.NoError(t, err)
	h := commands.NewCreateOrderCommandHandler(factory, geocoder)

	_, err = h.Handle(t.Context(), cmd)

	require.True(t, errs.IsValidation(err))
	factory.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateOrderCommandHandler_AddError(t *testing.T) {
	scope := newScope(t)
	loc := newLocation(t, 1, 1)
	factory, uow, _ := orderUoW(t, scope, errors.New("add error"))
	cmd, err := commands.NewCreateOrderCommand(scope, kernel.NewUUID(), "Dock", &loc, 5, 10, "")
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockGeocoder))
	_, err = h.Handle(t.Context(), cmd)

	require.EqualError(t, err, "add error")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), new(MockGeocoder))
	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestDeleteOrderCommandHandler(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	o := newOrder(t, scope)
	store := newMemStore()
	store.seedOrder(o)
	factory := new(MockOrderUoWFactory)
	factory.On("Create", scope).Return(store.Create(scope))
	h := commands.NewDeleteOrderCommandHandler(factory)

	cmd, err := commands.NewDeleteOrderCommand(scope, o.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.NotContains(t, store.state.orders, o.ID())

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_OtherOrganization(t *testing.T) {
	ctx := t.Context()
	scope := newScope(t)
	foreign := newOrder(t, newScope(t))
	store := newMemStore()
	store.seedOrder(foreign)
	factory := new(MockOrderUoWFactory)
	factory.On("Create", scope).Return(store.Create(scope)).Once()

	cmd, err := commands.NewDeleteOrderCommand(scope, foreign.ID())
	require.NoError(t, err)
	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, store.state.orders, foreign.ID())
}
