package http

import (
	"net/http"

	"entrega/internal/core/application/usecases/commands"
	"entrega/internal/core/application/usecases/queries"
	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens *auth.TokenService

	// Command handlers
	registerAccountHandler commands.RegisterAccountCommandHandler
	createProductHandler   commands.CreateProductCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	claimOrderHandler      commands.ClaimOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	authenticateAccountHandler queries.AuthenticateAccountQueryHandler
	listProductsHandler        queries.ListProductsQueryHandler
	getAvailableOrdersHandler  queries.GetAvailableOrdersQueryHandler
	getClientOrdersHandler     queries.GetClientOrdersQueryHandler
	getCourierOrdersHandler    queries.GetCourierOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server wired with the required command and
// query handlers.
func NewServer(
	tokens *auth.TokenService,
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	authenticateAccountHandler queries.AuthenticateAccountQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getClientOrdersHandler queries.GetClientOrdersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		tokens:                     tokens,
		registerAccountHandler:     registerAccountHandler,
		createProductHandler:       createProductHandler,
		createOrderHandler:         createOrderHandler,
		claimOrderHandler:          claimOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		authenticateAccountHandler: authenticateAccountHandler,
		listProductsHandler:        listProductsHandler,
		getAvailableOrdersHandler:  getAvailableOrdersHandler,
		getClientOrdersHandler:     getClientOrdersHandler,
		getCourierOrdersHandler:    getCourierOrdersHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.RegisterAccount)
	api.POST("/auth/login", s.Login)
	api.GET("/products", s.ListProducts)

	authed := api.Group("", AuthMiddleware(s.tokens))
	authed.POST("/products", s.CreateProduct)
	authed.GET("/orders/:id", s.GetOrder)

	clients := api.Group("", AuthMiddleware(s.tokens), requireRole(kernel.RoleClient))
	clients.POST("/orders", s.CreateOrder)
	clients.GET("/orders", s.GetClientOrders)

	couriers := api.Group("", AuthMiddleware(s.tokens), requireRole(kernel.RoleCourier))
	couriers.GET("/orders/available", s.GetAvailableOrders)
	couriers.GET("/orders/assigned", s.GetCourierOrders)
	couriers.POST("/orders/:id/claim", s.ClaimOrder)

	authed.POST("/orders/:id/transition", s.TransitionOrder)
}

// RegisterAccount handles POST /api/v1/auth/register.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := kernel.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "role must be client or courier")
	}

	cmd, err := commands.NewRegisterAccountCommand(
		request.Name, request.Email, request.Password, role)
	if err != nil {
		return domainError(ctx, err)
	}

	account, err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, accountToResponse(account))
}

// Login handles POST /api/v1/auth/login. Credentials that do not match an
// account produce 404 without revealing which part was wrong.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateAccountQuery(request.Email, request.Password)
	if err != nil {
		return domainError(ctx, err)
	}

	account, err := s.authenticateAccountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	actor, err := kernel.NewActor(account.ID, account.Role)
	if err != nil {
		return domainError(ctx, err)
	}

	token, err := s.tokens.Issue(actor)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request NewProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitPrice, err := kernel.MoneyFromString(request.UnitPrice)
	if err != nil {
		return badRequest(ctx, "unit_price must be a decimal amount")
	}

	cmd, err := commands.NewCreateProductCommand(request.Name, request.Description, unitPrice)
	if err != nil {
		return domainError(ctx, err)
	}

	product, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(product))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.listProductsHandler.Handle(
		ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, catalogEntryToResponse(product))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The authenticated client is the
// order's owner; the declared total must match the catalog prices.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "restaurant_id must be a UUID")
	}

	total, err := kernel.MoneyFromString(request.Total)
	if err != nil {
		return badRequest(ctx, "total must be a decimal amount")
	}

	items := make([]commands.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemRequest{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor.ID(),
		restaurantID,
		request.PaymentMethod,
		request.DeliveryAddress,
		total,
		items,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetClientOrders handles GET /api/v1/orders - the client's own orders,
// newest first.
func (s *Server) GetClientOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetClientOrdersQuery(actor.ID())
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getClientOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, entry := range orders {
		response = append(response, clientOrderToSummary(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableOrders handles GET /api/v1/orders/available - unclaimed
// orders ready for pickup, oldest first.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	orders, err := s.getAvailableOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableOrdersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, entry := range orders {
		response = append(response, availableOrderToSummary(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierOrders handles GET /api/v1/orders/assigned - the courier's
// active deliveries, finished and abandoned orders excluded.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCourierOrdersQuery(actor.ID(),
		[]order.Status{order.Delivered, order.Cancelled})
	if err != nil {
		return domainError(ctx, err)
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, entry := range orders {
		response = append(response, courierOrderToSummary(entry))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id. Visibility is decided by the
// query: the owning client, the assigned courier, or any courier while the
// order is unclaimed and ready.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "order id must be a UUID")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return domainError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailToResponse(detail))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim. Exactly one courier
// wins a contested claim; the loser gets 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "order id must be a UUID")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, actor.ID())
	if err != nil {
		return domainError(ctx, err)
	}

	claimed, err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(claimed))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition. Whether the
// actor may request the target status is decided by the transition policy.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "order id must be a UUID")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "unknown target status")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return domainError(ctx, err)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func domainError(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), errorBody(err))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}
