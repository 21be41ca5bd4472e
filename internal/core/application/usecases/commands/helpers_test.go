package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

// testOrderAt walks a fresh order through the lifecycle up to the wanted
// status, claimed by courierID and destined for siteID.
func testOrderAt(t *testing.T, status order.Status, courierID, siteID kernel.UUID) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testMoney(t, 10000))
	require.NoError(t, err)
	if status == order.Created {
		return aggregate
	}

	require.NoError(t, aggregate.ReleaseForPickup(siteID))
	if status == order.AvailableForPickup {
		return aggregate
	}

	require.NoError(t, aggregate.Claim(courierID))
	if status == order.ClaimedByCourier {
		return aggregate
	}

	for _, next := range []order.Status{
		order.EnRouteToSeller,
		order.AtSeller,
		order.PickedUp,
		order.EnRouteToSite,
		order.AtSite,
	} {
		require.NoError(t, aggregate.TransitionTo(next))
		if status == next {
			return aggregate
		}
	}

	require.NoError(t, aggregate.IssueCollectionCode("482913", time.Now().UTC()))
	if status == order.AwaitingCollection {
		return aggregate
	}

	require.NoError(t, aggregate.TransitionTo(order.CollectedByBuyer))
	require.Equal(t, status, aggregate.Status())
	return aggregate
}
