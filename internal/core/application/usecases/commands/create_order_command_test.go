package commands_test

import (
	"testing"

	"entrega/internal/core/application/usecases/commands"
	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func validItemRequests() []commands.ItemRequest {
	return []commands.ItemRequest{
		{ProductName: "ceviche mixto", Quantity: 2},
		{ProductName: "chicha morada", Quantity: 1},
	}
}

func TestNewCreateOrderCommand_Valid(t *testing.T) {
	clientID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		clientID, restaurantID,
		"card", "Av. Arequipa 1234",
		money(t, "45.00"), validItemRequests(),
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, clientID, cmd.ClientID())
	require.Equal(t, restaurantID, cmd.RestaurantID())
	require.Len(t, cmd.Items(), 2)
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		build func() (commands.CreateOrderCommand, error)
	}{
		{
			name: "zero client id",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.UUID{}, kernel.NewUUID(),
					"card", "Av. Arequipa 1234",
					money(t, "45.00"), validItemRequests(),
				)
			},
		},
		{
			name: "empty payment method",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"", "Av. Arequipa 1234",
					money(t, "45.00"), validItemRequests(),
				)
			},
		},
		{
			name: "empty delivery address",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"card", "",
					money(t, "45.00"), validItemRequests(),
				)
			},
		},
		{
			name: "zero total",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"card", "Av. Arequipa 1234",
					money(t, "0.00"), validItemRequests(),
				)
			},
		},
		{
			name: "no items",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"card", "Av. Arequipa 1234",
					money(t, "45.00"), nil,
				)
			},
		},
		{
			name: "item without product name",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"card", "Av. Arequipa 1234",
					money(t, "45.00"),
					[]commands.ItemRequest{{ProductName: "", Quantity: 1}},
				)
			},
		},
		{
			name: "item with zero quantity",
			build: func() (commands.CreateOrderCommand, error) {
				return commands.NewCreateOrderCommand(
					kernel.NewUUID(), kernel.NewUUID(),
					"card", "Av. Arequipa 1234",
					money(t, "45.00"),
					[]commands.ItemRequest{{ProductName: "ceviche mixto", Quantity: 0}},
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
		})
	}
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewCreateOrderCommand_NegativeTotal_ReturnsValueError(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"card", "Av. Arequipa 1234",
		money(t, "-1.00"), validItemRequests(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
