package commands_test

import (
	"testing"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(value)
	require.NoError(t, err)
	return m
}

func orderInStatus(t *testing.T, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 2, money(t, "10.00"))
	require.NoError(t, err)

	restored, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"card", "Av. Arequipa 1234",
		money(t, "20.00"), time.Now().UTC(),
		status, courierID, []order.Item{item},
	)
	require.NoError(t, err)
	return restored
}

func actor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}
