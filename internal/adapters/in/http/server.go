// Package http exposes the order workflow over a JSON API. The adapter is
// deliberately thin: it parses the route, the actor headers and the body,
// builds a command or query, and translates domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/checklist"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the already-authenticated actor identity. Authentication
// happens upstream; this service trusts the gateway.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	approveOrderHandler      commands.ApproveOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	advanceProductionHandler commands.AdvanceProductionCommandHandler
	setChecklistStageHandler commands.SetChecklistStageCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	payCommissionHandler     commands.PayCommissionCommandHandler

	// Query handlers
	getOrderHistoryHandler          queries.GetOrderHistoryQueryHandler
	getOrdersInProductionHandler    queries.GetOrdersInProductionQueryHandler
	getUnpaidDeliveredOrdersHandler queries.GetUnpaidDeliveredOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	advanceProductionHandler commands.AdvanceProductionCommandHandler,
	setChecklistStageHandler commands.SetChecklistStageCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	payCommissionHandler commands.PayCommissionCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getOrdersInProductionHandler queries.GetOrdersInProductionQueryHandler,
	getUnpaidDeliveredOrdersHandler queries.GetUnpaidDeliveredOrdersQueryHandler,
) *Server {
	return &Server{
		approveOrderHandler:             approveOrderHandler,
		rejectOrderHandler:              rejectOrderHandler,
		advanceProductionHandler:        advanceProductionHandler,
		setChecklistStageHandler:        setChecklistStageHandler,
		deliverOrderHandler:             deliverOrderHandler,
		payCommissionHandler:            payCommissionHandler,
		getOrderHistoryHandler:          getOrderHistoryHandler,
		getOrdersInProductionHandler:    getOrdersInProductionHandler,
		getUnpaidDeliveredOrdersHandler: getUnpaidDeliveredOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/advance", s.AdvanceProduction)
	api.POST("/orders/:id/checklist", s.SetChecklistStage)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/commission/pay", s.PayCommission)

	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/orders/in-production", s.GetOrdersInProduction)
	api.GET("/commissions/unpaid", s.GetUnpaidCommissions)

	e.GET("/health", s.Health)
}

// ApproveOrder handles POST /api/v1/orders/:id/approve - moves a quote to approved.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body ApproveOrderRequest
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actorID, actorRole, body.Note)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject - cancels a quote with a reason.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body RejectOrderRequest
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actorID, actorRole, body.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceProduction handles POST /api/v1/orders/:id/advance - moves an order
// along the production pipeline.
func (s *Server) AdvanceProduction(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body AdvanceProductionRequest
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	fromStatus, err := order.ParseStatus(body.From)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}
	toStatus, err := order.ParseStatus(body.To)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewAdvanceProductionCommand(orderID, actorID, actorRole, fromStatus, toStatus, body.Note)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	result, err := s.advanceProductionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	response := AdvanceProductionResponse{Status: result.Status.String()}
	if result.Checklist != nil {
		cl := checklistResponse(*result.Checklist)
		response.Checklist = &cl
	}
	if result.Status == order.StatusFinished {
		elapsed := result.ElapsedMinutes
		response.ElapsedMinutes = &elapsed
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetChecklistStage handles POST /api/v1/orders/:id/checklist - toggles one
// production stage flag.
func (s *Server) SetChecklistStage(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	var body SetChecklistStageRequest
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return errorJSON(ctx, http.StatusBadRequest, errors.New("invalid request body"))
	}

	stage, err := checklist.ParseStage(body.Stage)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewSetChecklistStageCommand(orderID, actorID, actorRole, stage, body.Done)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	result, err := s.setChecklistStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	return ctx.JSON(http.StatusOK, SetChecklistStageResponse{
		Checklist: checklistResponse(result.Checklist),
		Complete:  result.Complete,
	})
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver - marks a finished
// order as handed over to the customer.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actorID, actorRole, "")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, statusFromError(handleErr), handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayCommission handles POST /api/v1/orders/:id/commission/pay - settles the
// sales commission of a delivered order.
func (s *Server) PayCommission(ctx echo.Context) error {
	orderID, actorID, actorRole, err := requestIdentity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewPayCommissionCommand(orderID, actorID, actorRole)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	paid, err := s.payCommissionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	return ctx.JSON(http.StatusOK, Commission{
		OrderID:              paid.OrderID().String(),
		SalesRepID:           paid.SalesRepID().String(),
		OrderValueCents:      paid.OrderValue().Cents(),
		Rate:                 paid.Rate(),
		CommissionValueCents: paid.CommissionValue().Cents(),
		PaymentStatus:        paid.PaymentStatus().String(),
		PaidAt:               paid.PaidAt(),
	})
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - returns the status
// trail of one order, oldest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntry{
			Status:    entry.Status.String(),
			ActorID:   entry.ActorID.String(),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersInProduction handles GET /api/v1/orders/in-production - returns the
// production floor dashboard.
func (s *Server) GetOrdersInProduction(ctx echo.Context) error {
	rows, err := s.getOrdersInProductionHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrdersInProductionQuery(),
	)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	response := make([]OrderInProduction, len(rows))
	for i, row := range rows {
		item := OrderInProduction{
			ID:                  row.ID.String(),
			FinalValueCents:     row.FinalValue.Cents(),
			ProductionStartedAt: row.StartedAt,
			Checklist: Checklist{
				Cut:          row.Cut,
				Sewing:       row.Sewing,
				Finishing:    row.Finishing,
				QualityCheck: row.QualityCheck,
			},
		}
		if row.ResponsibleID != nil {
			responsible := row.ResponsibleID.String()
			item.ProductionResponsibleID = &responsible
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnpaidCommissions handles GET /api/v1/commissions/unpaid - returns
// delivered orders whose commission is still owed, oldest delivery first.
func (s *Server) GetUnpaidCommissions(ctx echo.Context) error {
	rows, err := s.getUnpaidDeliveredOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetUnpaidDeliveredOrdersQuery(),
	)
	if err != nil {
		return errorJSON(ctx, statusFromError(err), err)
	}

	response := make([]UnpaidCommission, len(rows))
	for i, row := range rows {
		response[i] = UnpaidCommission{
			OrderID:            row.ID.String(),
			SalesRepID:         row.SalesRepID.String(),
			OrderValueCents:    row.FinalValue.Cents(),
			CommissionDueCents: row.CommissionDue.Cents(),
			DeliveredAt:        row.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requestIdentity extracts the order id from the route and the actor identity
// from the gateway headers.
func requestIdentity(ctx echo.Context) (kernel.UUID, kernel.UUID, actor.Role, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, actor.RoleUnknown,
			errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, actor.RoleUnknown,
			errs.NewValueIsInvalidErrorWithCause(HeaderActorID, err)
	}

	actorRole, err := actor.ParseRole(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, actor.RoleUnknown,
			errs.NewValueIsInvalidErrorWithCause(HeaderActorRole, err)
	}

	return orderID, actorID, actorRole, nil
}

func checklistResponse(snapshot commands.ChecklistSnapshot) Checklist {
	return Checklist{
		Cut:          snapshot.Cut,
		Sewing:       snapshot.Sewing,
		Finishing:    snapshot.Finishing,
		QualityCheck: snapshot.QualityCheck,
	}
}

// statusFromError maps domain errors to HTTP status codes. State machine
// violations and lost races are conflicts; bad input is a bad request.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrOperationForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, checklist.ErrChecklistIncomplete):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
