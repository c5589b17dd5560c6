package http

import (
	"time"

	"entrega/internal/core/application/usecases/queries"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/core/ports"
)

// RegisterRequest is the sign-up body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewProductRequest is the catalog addition body.
type NewProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   string `json:"unit_price"`
}

// NewOrderItemRequest is one requested line in an order body.
type NewOrderItemRequest struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// NewOrderRequest is the order placement body. Total is the client's
// declared total as a decimal string.
type NewOrderRequest struct {
	RestaurantID    string                `json:"restaurant_id"`
	PaymentMethod   string                `json:"payment_method"`
	DeliveryAddress string                `json:"delivery_address"`
	Total           string                `json:"total"`
	Items           []NewOrderItemRequest `json:"items"`
}

// TransitionRequest names the requested lifecycle target.
type TransitionRequest struct {
	Target string `json:"target"`
}

// OrderItemResponse is one line of an order detail.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// OrderResponse is the full order view.
type OrderResponse struct {
	ID              string              `json:"id"`
	ClientID        string              `json:"client_id"`
	RestaurantID    string              `json:"restaurant_id"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	DeliveryAddress string              `json:"delivery_address"`
	Total           string              `json:"total"`
	CourierID       *string             `json:"courier_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// OrderSummaryResponse is one entry in a listing.
type OrderSummaryResponse struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	Status          string    `json:"status"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	Total           string    `json:"total"`
	CourierID       *string   `json:"courier_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func accountToResponse(account ports.Account) AccountResponse {
	return AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role.String(),
	}
}

func productToResponse(product ports.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice.String(),
	}
}

func catalogEntryToResponse(product queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice.String(),
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	var courierID *string
	if o.Courier() != nil {
		s := o.Courier().String()
		courierID = &s
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		ClientID:        o.ClientID().String(),
		RestaurantID:    o.RestaurantID().String(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod(),
		DeliveryAddress: o.DeliveryAddress(),
		Total:           o.Total().String(),
		CourierID:       courierID,
		CreatedAt:       o.CreatedAt(),
		Items:           items,
	}
}

func orderDetailToResponse(detail queries.OrderResponse) OrderResponse {
	var courierID *string
	if detail.CourierID != nil {
		s := detail.CourierID.String()
		courierID = &s
	}

	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		})
	}

	return OrderResponse{
		ID:              detail.ID.String(),
		ClientID:        detail.ClientID.String(),
		RestaurantID:    detail.RestaurantID.String(),
		Status:          detail.Status.String(),
		PaymentMethod:   detail.PaymentMethod,
		DeliveryAddress: detail.DeliveryAddress,
		Total:           detail.Total.String(),
		CourierID:       courierID,
		CreatedAt:       detail.CreatedAt,
		Items:           items,
	}
}

func availableOrderToSummary(entry queries.AvailableOrderResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:              entry.ID.String(),
		RestaurantID:    entry.RestaurantID.String(),
		Status:          order.ReadyForPickup.String(),
		DeliveryAddress: entry.DeliveryAddress,
		Total:           entry.Total.String(),
		CreatedAt:       entry.CreatedAt,
	}
}

func clientOrderToSummary(entry queries.ClientOrderResponse) OrderSummaryResponse {
	var courierID *string
	if entry.CourierID != nil {
		s := entry.CourierID.String()
		courierID = &s
	}

	return OrderSummaryResponse{
		ID:              entry.ID.String(),
		RestaurantID:    entry.RestaurantID.String(),
		Status:          entry.Status.String(),
		DeliveryAddress: entry.DeliveryAddress,
		Total:           entry.Total.String(),
		CourierID:       courierID,
		CreatedAt:       entry.CreatedAt,
	}
}

func courierOrderToSummary(entry queries.CourierOrderResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:              entry.ID.String(),
		RestaurantID:    entry.RestaurantID.String(),
		Status:          entry.Status.String(),
		DeliveryAddress: entry.DeliveryAddress,
		Total:           entry.Total.String(),
		CreatedAt:       entry.CreatedAt,
	}
}
