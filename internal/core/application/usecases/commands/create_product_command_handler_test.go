package commands_test

import (
	"context"
	"testing"

	"entrega/internal/core/application/usecases/commands"
	"entrega/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateProductCommand(
		"lomo saltado", "stir-fried beef with fries", money(t, "18.50"))
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Add", mock.Anything, mock.AnythingOfType("ports.Product")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	product, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "lomo saltado", product.Name)
	require.True(t, money(t, "18.50").IsEqual(product.UnitPrice))
	require.NoError(t, product.ID.Validate())

	products.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateProductCommand("lomo saltado", "", money(t, "18.50"))
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Add", mock.Anything, mock.AnythingOfType("ports.Product")).
		Return(errs.NewIntegrityError("duplicate name", nil)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(products).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIntegrity)
}

func TestNewCreateProductCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateProductCommand("", "", money(t, "18.50"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateProductCommand("lomo saltado", "", money(t, "0.00"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var cmd commands.CreateProductCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateProductCommandIsNotConstructed)
}
