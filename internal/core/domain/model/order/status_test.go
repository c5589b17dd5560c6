package order_test

import (
	"fmt"
	"testing"

	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all known statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		invalid := []order.Status{"", "unknown", "PENDING_CONFIRMATION", "shipped"}

		for _, status := range invalid {
			t.Run(fmt.Sprintf("rejects %q", string(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	status, err := order.StatusFromString("ready_for_pickup")
	require.NoError(t, err)
	assert.Equal(t, order.ReadyForPickup, status)

	_, err = order.StatusFromString("lost_in_transit")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_TransitionGraph(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.PendingConfirmation:   {order.ConfirmedByRestaurant, order.Cancelled},
		order.ConfirmedByRestaurant: {order.ReadyForPickup, order.Cancelled},
		order.ReadyForPickup:        {order.ClaimedByCourier, order.Cancelled},
		order.ClaimedByCourier:      {order.EnRoute},
		order.EnRoute:               {order.Delivered},
		order.Delivered:             {},
		order.Cancelled:             {},
	}

	isLegal := func(from, to order.Status) bool {
		for _, next := range legal[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	// Exhaustive check of every (from, target) pair against the graph.
	for _, from := range order.AllStatuses() {
		for _, target := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s to %s", from, target), func(t *testing.T) {
				got, err := from.TransitionTo(target)

				if isLegal(from, target) {
					require.NoError(t, err)
					assert.Equal(t, target, got)
				} else {
					require.Error(t, err)
					assert.ErrorIs(t, err, errs.ErrIllegalTransition)
				}
			})
		}
	}
}

func TestStatus_TerminalStatesRejectEveryTarget(t *testing.T) {
	for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
		assert.True(t, terminal.IsTerminal())

		for _, target := range order.AllStatuses() {
			_, err := terminal.TransitionTo(target)
			assert.ErrorIs(t, err, errs.ErrIllegalTransition,
				"terminal status %s must not transition to %s", terminal, target)
		}
	}
}

func TestStatus_IsCourierOwned(t *testing.T) {
	owned := map[order.Status]bool{
		order.PendingConfirmation:   false,
		order.ConfirmedByRestaurant: false,
		order.ReadyForPickup:        false,
		order.ClaimedByCourier:      true,
		order.EnRoute:               true,
		order.Delivered:             true,
		order.Cancelled:             false,
	}

	for status, want := range owned {
		assert.Equal(t, want, status.IsCourierOwned(), "status %s", status)
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	for _, status := range order.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			if status.IsCourierOwned() {
				require.NoError(t, status.ValidateCanHaveCourier(true))
				assert.ErrorIs(t, status.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, status.ValidateCanHaveCourier(false))
				assert.ErrorIs(t, status.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid)
			}
		})
	}
}
