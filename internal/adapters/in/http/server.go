// Package http is the inbound HTTP adapter: a thin echo layer that binds
// request bodies, delegates to command and query handlers, and maps
// domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"burritoops/internal/core/application/usecases/commands"
	"burritoops/internal/core/application/usecases/queries"
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// apiError is the JSON error body returned by every endpoint.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMenuItemHandler commands.CreateMenuItemCommandHandler
	createCustomerHandler commands.CreateCustomerCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	progressOrdersHandler commands.ProgressOrdersCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	progressOrdersHandler commands.ProgressOrdersCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
) *Server {
	return &Server{
		createMenuItemHandler:      createMenuItemHandler,
		createCustomerHandler:      createCustomerHandler,
		createDriverHandler:        createDriverHandler,
		createOrderHandler:         createOrderHandler,
		progressOrdersHandler:      progressOrdersHandler,
		getActiveOrdersHandler:     getActiveOrdersHandler,
		getAvailableDriversHandler: getAvailableDriversHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/menu-items", s.CreateMenuItem)
	e.POST("/api/v1/customers", s.CreateCustomer)
	e.POST("/api/v1/drivers", s.CreateDriver)
	e.GET("/api/v1/drivers/available", s.GetAvailableDrivers)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/active", s.GetActiveOrders)
	e.POST("/api/v1/orders/:id/progress", s.ProgressOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

type newMenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body newMenuItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateMenuItemCommand(body.Name, body.Price, body.Description)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create menu item")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":          created.ID().String(),
		"name":        created.Name(),
		"price":       created.Price(),
		"description": created.Description(),
	})
}

type newCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body newCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Phone, body.Address)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		// Phone format violations surface here from the domain model
		var invalid *errs.ValueIsInvalidError
		if errors.As(err, &invalid) {
			return badRequest(ctx, "Invalid customer data: "+err.Error())
		}
		return internalError(ctx, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":      created.ID().String(),
		"name":    created.Name(),
		"phone":   created.Phone(),
		"address": created.Address(),
	})
}

type newDriver struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CreateDriver handles POST /api/v1/drivers. New drivers start available
// when the body carries no status.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body newDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status := driver.Available
	if body.Status != "" {
		parsed, err := driver.StatusFromString(body.Status)
		if err != nil {
			return badRequest(ctx, "Invalid driver status: "+body.Status)
		}
		status = parsed
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, status)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to create driver")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":     created.ID().String(),
		"name":   created.Name(),
		"status": created.Status().String(),
	})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve available drivers")
	}

	return ctx.JSON(http.StatusOK, drivers)
}

type newOrder struct {
	CustomerID string         `json:"customer_id"`
	Lines      []newOrderLine `json:"lines"`
	Notes      string         `json:"notes"`
}

type newOrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body newOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.ParseEntityID(kernel.CustomerPrefix, body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+body.CustomerID)
	}

	lines := make([]commands.OrderLineInput, 0, len(body.Lines))
	for _, line := range body.Lines {
		menuItemID, lineErr := kernel.ParseEntityID(kernel.MenuItemPrefix, line.MenuItemID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+line.MenuItemID)
		}
		lines = append(lines, commands.OrderLineInput{
			MenuItemID: menuItemID,
			Quantity:   line.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines, body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, apiError{
				Code:    http.StatusNotFound,
				Message: "Referenced entity not found: " + err.Error(),
			})
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"id":           created.ID().String(),
		"customer_id":  created.CustomerID().String(),
		"status":       created.Status().String(),
		"total_amount": created.TotalAmount(),
		"created_at":   created.CreatedAt(),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve active orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

type progressOrder struct {
	Expected string `json:"expected"`
	Next     string `json:"next"`
}

// ProgressOrder handles POST /api/v1/orders/:id/progress. It runs a
// single-action batch through the progression handler and returns the
// execution report, so callers see skips the same way batch tooling does.
func (s *Server) ProgressOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseEntityID(kernel.OrderPrefix, ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var body progressOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	expected, err := order.StatusFromString(body.Expected)
	if err != nil {
		return badRequest(ctx, "Invalid expected status: "+body.Expected)
	}

	next, err := order.StatusFromString(body.Next)
	if err != nil {
		return badRequest(ctx, "Invalid next status: "+body.Next)
	}

	action, err := commands.NewProgressionAction(orderID, expected, next)
	if err != nil {
		return badRequest(ctx, "Invalid progression: "+err.Error())
	}

	cmd, err := commands.NewProgressOrdersCommand([]commands.ProgressionAction{action})
	if err != nil {
		return badRequest(ctx, "Invalid progression: "+err.Error())
	}

	report, err := s.progressOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to progress order")
	}

	return ctx.JSON(http.StatusOK, report)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, apiError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, apiError{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
