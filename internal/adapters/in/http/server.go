// Package http provides the inbound HTTP adapter. It exposes order intake,
// production planning, and design enhancement over a JSON API and translates
// transport concerns into application commands and queries.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"printstream/internal/core/application/usecases/commands"
	"printstream/internal/core/application/usecases/queries"
	"printstream/internal/core/domain/model/kernel"
	"printstream/internal/core/domain/model/workorder"
	"printstream/internal/pkg/errs"
	"printstream/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler            commands.PlaceOrderCommandHandler
	changeWorkOrderStatusHandler commands.ChangeWorkOrderStatusCommandHandler
	enhanceDesignHandler         commands.EnhanceDesignCommandHandler

	// Query handlers
	getAllOrdersHandler            queries.GetAllOrdersQueryHandler
	getAllWorkOrdersHandler        queries.GetAllWorkOrdersQueryHandler
	getMaterialRequirementsHandler queries.GetMaterialRequirementsQueryHandler
	getSubcontractWorklistHandler  queries.GetSubcontractWorklistQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeWorkOrderStatusHandler commands.ChangeWorkOrderStatusCommandHandler,
	enhanceDesignHandler commands.EnhanceDesignCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllWorkOrdersHandler queries.GetAllWorkOrdersQueryHandler,
	getMaterialRequirementsHandler queries.GetMaterialRequirementsQueryHandler,
	getSubcontractWorklistHandler queries.GetSubcontractWorklistQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:              placeOrderHandler,
		changeWorkOrderStatusHandler:   changeWorkOrderStatusHandler,
		enhanceDesignHandler:           enhanceDesignHandler,
		getAllOrdersHandler:            getAllOrdersHandler,
		getAllWorkOrdersHandler:        getAllWorkOrdersHandler,
		getMaterialRequirementsHandler: getMaterialRequirementsHandler,
		getSubcontractWorklistHandler:  getSubcontractWorklistHandler,
		logger:                         logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/work-orders", s.GetWorkOrders)
	api.PATCH("/work-orders/:id/status", s.ChangeWorkOrderStatus)
	api.GET("/work-orders/material-requirements", s.GetMaterialRequirements)
	api.GET("/work-orders/subcontract-worklist", s.GetSubcontractWorklist)
	api.POST("/designs/enhance", s.EnhanceDesign)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
// The order, its line item, and the derived work order are created atomically.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(req.ProductID, req.DesignDataURI, req.Color, req.Size, req.Price)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Order placement failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to place order")
	}

	metrics.OrdersPlaced.Inc()
	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Order list query failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Status:       o.Status.String(),
			Total:        o.Total,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrders handles GET /api/v1/work-orders - retrieves all work orders,
// oldest first, for the production planning screen.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	query := queries.NewGetAllWorkOrdersQuery()

	workOrders, err := s.getAllWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Work order list query failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve work orders")
	}

	response := make([]WorkOrderResponse, len(workOrders))
	for i, w := range workOrders {
		response[i] = WorkOrderResponse{
			ID:            w.ID.String(),
			OrderID:       w.OrderID.String(),
			ProductName:   w.ProductName,
			ProductColor:  w.ProductColor,
			ProductSize:   w.ProductSize,
			DesignDataURI: w.DesignDataURI,
			Quantity:      w.Quantity,
			Status:        w.Status.String(),
			IsSubcontract: w.IsSubcontract,
			CreatedAt:     w.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeWorkOrderStatus handles PATCH /api/v1/work-orders/:id/status - moves
// a work order to a new production status.
func (s *Server) ChangeWorkOrderStatus(ctx echo.Context) error {
	workOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid work order id")
	}

	var req ChangeStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	newStatus, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(workOrderID, newStatus)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid status change data: "+err.Error())
	}

	if handleErr := s.changeWorkOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return s.writeError(ctx, http.StatusNotFound, "Work order not found")
		}
		s.logger.ErrorContext(ctx.Request().Context(), "Status change failed", "error", handleErr)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to change work order status")
	}

	metrics.StatusTransitions.WithLabelValues(newStatus.String()).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// GetMaterialRequirements handles GET /api/v1/work-orders/material-requirements - returns
// the per-product, per-size unit totals awaiting in-house production.
func (s *Server) GetMaterialRequirements(ctx echo.Context) error {
	query := queries.NewGetMaterialRequirementsQuery()

	requirements, err := s.getMaterialRequirementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Material requirements query failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve material requirements")
	}

	response := make([]MaterialRequirementResponse, len(requirements))
	for i, r := range requirements {
		response[i] = MaterialRequirementResponse{
			ProductName:   r.ProductName,
			ProductSize:   r.ProductSize,
			TotalQuantity: r.TotalQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSubcontractWorklist handles GET /api/v1/work-orders/subcontract-worklist - returns
// subcontracted work orders that still need to be sent out or tracked.
func (s *Server) GetSubcontractWorklist(ctx echo.Context) error {
	query := queries.NewGetSubcontractWorklistQuery()

	worklist, err := s.getSubcontractWorklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Subcontract worklist query failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to retrieve subcontract worklist")
	}

	response := make([]SubcontractWorklistItemResponse, len(worklist))
	for i, w := range worklist {
		response[i] = SubcontractWorklistItemResponse{
			ID:           w.ID.String(),
			OrderID:      w.OrderID.String(),
			ProductName:  w.ProductName,
			ProductColor: w.ProductColor,
			ProductSize:  w.ProductSize,
			Quantity:     w.Quantity,
			Status:       w.Status.String(),
			CreatedAt:    w.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EnhanceDesign handles POST /api/v1/designs/enhance - runs a design through
// the enhancement service. Upstream failures degrade to the original design
// rather than failing the request.
func (s *Server) EnhanceDesign(ctx echo.Context) error {
	var req EnhanceDesignRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEnhanceDesignCommand(req.DesignDataURI, req.Prompt)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid design data: "+err.Error())
	}

	result, err := s.enhanceDesignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Design enhancement failed", "error", err)
		return s.writeError(ctx, http.StatusInternalServerError, "Failed to enhance design")
	}

	if result.Degraded {
		metrics.EnhancementDegraded.Inc()
	}

	return ctx.JSON(http.StatusOK, EnhanceDesignResponse{
		EnhancedDesignDataURI: result.EnhancedDesignDataURI,
		Suggestions:           result.Suggestions,
		Degraded:              result.Degraded,
	})
}

// writeError sends a generic error body. Internal detail never leaves the
// server; it is logged instead.
func (s *Server) writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
