package queries_test

import (
	"testing"

	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/core/domain/model/order"
	"fleetdispatch/internal/core/domain/model/tenant"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDriverRouteQuery(t *testing.T) {
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)

	q, err := queries.NewGetDriverRouteQuery(scope, "  dana@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", q.DriverEmail())
	require.NoError(t, q.Validate())

	_, err = queries.NewGetDriverRouteQuery(scope, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetDriverRouteQuery(tenant.Scope{}, "dana@example.com")
	require.ErrorIs(t, err, tenant.ErrScopeIsNotConstructed)
}

func TestQueries_ZeroValueIsRejected(t *testing.T) {
	assert.ErrorIs(t, queries.GetDriverRouteQuery{}.Validate(), queries.ErrGetDriverRouteQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListVehiclesQuery{}.Validate(), queries.ErrListVehiclesQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListDriversQuery{}.Validate(), queries.ErrListDriversQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListRoutesQuery{}.Validate(), queries.ErrListRoutesQueryIsNotConstructed)
}

func TestNewListOrdersQuery_Status(t *testing.T) {
	scope, err := tenant.NewScope(kernel.NewUUID())
	require.NoError(t, err)

	all, err := queries.NewListOrdersQuery(scope, " ")
	require.NoError(t, err)
	assert.Nil(t, all.Status())

	delivered, err := queries.NewListOrdersQuery(scope, "delivered")
	require.NoError(t, err)
	require.NotNil(t, delivered.Status())
	assert.Equal(t, order.Delivered, *delivered.Status())

	_, err = queries.NewListOrdersQuery(scope, "LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
