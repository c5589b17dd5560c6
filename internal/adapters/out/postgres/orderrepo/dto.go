// Package orderrepo provides the data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate: the header row and its line item rows always change as one
// transactional unit.
package orderrepo

import (
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and courier assignment are indexed because claim arbitration and the
// available-orders listing filter on them.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	Status          string          `gorm:"type:varchar(32);index"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaymentMethod   string          `gorm:"type:varchar(32)"`
	DeliveryAddress string
	CreatedAt       time.Time `gorm:"index"`
	Items           []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row. Position preserves the original item
// order within the parent order; the unit price is the one captured at
// order-creation time.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Position  int             `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			Position:  i,
		}
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ClientID:        aggregate.ClientID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		CourierID:       courierID,
		Status:          aggregate.Status().String(),
		Total:           aggregate.Total().Decimal(),
		PaymentMethod:   aggregate.PaymentMethod(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO back into an order aggregate, restoring
// line items in their persisted position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, len(dto.Items))
	for i, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			productID,
			itemDTO.Quantity,
			kernel.MoneyFromDecimal(itemDTO.UnitPrice),
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items[i] = item
	}

	return order.RestoreOrder(
		id,
		clientID,
		restaurantID,
		dto.PaymentMethod,
		dto.DeliveryAddress,
		kernel.MoneyFromDecimal(dto.Total),
		dto.CreatedAt,
		status,
		courierID,
		items,
	)
}
