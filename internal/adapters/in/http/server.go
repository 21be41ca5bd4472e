// Package http exposes the fulfillment use cases over a JSON HTTP API.
// Handlers translate between wire DTOs and commands or queries; all business
// decisions stay in the application layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/confirmation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the HTTP handlers for the fulfillment API.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	createOrderHandler        commands.CreateOrderCommandHandler
	registerAgentHandler      commands.RegisterAgentCommandHandler
	registerSiteHandler       commands.RegisterSiteCommandHandler
	releaseForPickupHandler   commands.ReleaseForPickupCommandHandler
	claimOrderHandler         commands.ClaimOrderCommandHandler
	advanceLegHandler         commands.AdvanceLegCommandHandler
	submitConfirmationHandler commands.SubmitConfirmationCommandHandler
	issueCollectionHandler    commands.IssueCollectionCodeCommandHandler
	adminOverrideHandler      commands.AdminOverrideCommandHandler
	computeCommissionHandler  commands.ComputeCommissionCommandHandler
	reviewCommissionHandler   commands.ReviewCommissionCommandHandler
	submitProofHandler        commands.SubmitPaymentProofCommandHandler
	reviewProofHandler        commands.ReviewPaymentProofCommandHandler

	listClaimableHandler      queries.ListClaimableOrdersQueryHandler
	orderHistoryHandler       queries.GetOrderHistoryQueryHandler
	pendingCommissionsHandler queries.GetPendingCommissionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	registerSiteHandler commands.RegisterSiteCommandHandler,
	releaseForPickupHandler commands.ReleaseForPickupCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	advanceLegHandler commands.AdvanceLegCommandHandler,
	submitConfirmationHandler commands.SubmitConfirmationCommandHandler,
	issueCollectionHandler commands.IssueCollectionCodeCommandHandler,
	adminOverrideHandler commands.AdminOverrideCommandHandler,
	computeCommissionHandler commands.ComputeCommissionCommandHandler,
	reviewCommissionHandler commands.ReviewCommissionCommandHandler,
	submitProofHandler commands.SubmitPaymentProofCommandHandler,
	reviewProofHandler commands.ReviewPaymentProofCommandHandler,
	listClaimableHandler queries.ListClaimableOrdersQueryHandler,
	orderHistoryHandler queries.GetOrderHistoryQueryHandler,
	pendingCommissionsHandler queries.GetPendingCommissionsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		registerAgentHandler:      registerAgentHandler,
		registerSiteHandler:       registerSiteHandler,
		releaseForPickupHandler:   releaseForPickupHandler,
		claimOrderHandler:         claimOrderHandler,
		advanceLegHandler:         advanceLegHandler,
		submitConfirmationHandler: submitConfirmationHandler,
		issueCollectionHandler:    issueCollectionHandler,
		adminOverrideHandler:      adminOverrideHandler,
		computeCommissionHandler:  computeCommissionHandler,
		reviewCommissionHandler:   reviewCommissionHandler,
		submitProofHandler:        submitProofHandler,
		reviewProofHandler:        reviewProofHandler,
		listClaimableHandler:      listClaimableHandler,
		orderHistoryHandler:       orderHistoryHandler,
		pendingCommissionsHandler: pendingCommissionsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/claimable", s.ListClaimableOrders)
	v1.GET("/orders/:orderId/history", s.GetOrderHistory)
	v1.POST("/orders/:orderId/release", s.ReleaseForPickup)
	v1.POST("/orders/:orderId/claim", s.ClaimOrder)
	v1.POST("/orders/:orderId/advance", s.AdvanceLeg)
	v1.POST("/orders/:orderId/confirmations", s.SubmitConfirmation)
	v1.POST("/orders/:orderId/collection-code", s.IssueCollectionCode)
	v1.POST("/orders/:orderId/override", s.AdminOverride)
	v1.POST("/orders/:orderId/commission", s.ComputeCommission)

	v1.POST("/agents", s.RegisterAgent)
	v1.POST("/sites", s.RegisterSite)

	v1.GET("/commissions/pending", s.GetPendingCommissions)
	v1.POST("/commissions/:commissionId/review", s.ReviewCommission)

	v1.POST("/payment-proofs", s.SubmitPaymentProof)
	v1.POST("/payment-proofs/:proofId/review", s.ReviewPaymentProof)
}

// NewOrderRequest is the payload for order creation.
type NewOrderRequest struct {
	BuyerID    string `json:"buyer_id"`
	SellerID   string `json:"seller_id"`
	TotalCents int64  `json:"total_cents"`
}

// OrderCreatedResponse returns the identifier assigned to a new order.
type OrderCreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sellerID, err := kernel.UUIDFromString(req.SellerID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	total, err := kernel.NewMoney(req.TotalCents)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, sellerID, total)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// ReleaseRequest is the payload for releasing an order for pickup.
type ReleaseRequest struct {
	SiteID string `json:"site_id"`
}

// ReleaseForPickup handles POST /api/v1/orders/:orderId/release.
func (s *Server) ReleaseForPickup(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ReleaseRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	siteID, err := kernel.UUIDFromString(req.SiteID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReleaseForPickupCommand(orderID, siteID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.releaseForPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimRequest is the payload for claiming an order.
type ClaimRequest struct {
	CourierID string `json:"courier_id"`
}

// ClaimOrder handles POST /api/v1/orders/:orderId/claim.
// Losing the race to another courier yields 409.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ClaimRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceRequest is the payload for a courier-declared leg transition.
type AdvanceRequest struct {
	ActorID string `json:"actor_id"`
	Target  string `json:"target"`
}

// AdvanceLeg handles POST /api/v1/orders/:orderId/advance.
func (s *Server) AdvanceLeg(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AdvanceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceLegCommand(orderID, actorID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceLegHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmationRequest is the payload for submitting handover evidence.
type ConfirmationRequest struct {
	ActorID  string `json:"actor_id"`
	Kind     string `json:"kind"`
	Evidence string `json:"evidence"`
	Note     string `json:"note"`
}

// SubmitConfirmation handles POST /api/v1/orders/:orderId/confirmations.
// A rejected attempt returns 400 after the attempt has been logged.
func (s *Server) SubmitConfirmation(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ConfirmationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	kind, err := confirmation.KindFromString(req.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSubmitConfirmationCommand(orderID, actorID, kind, req.Evidence, req.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.submitConfirmationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IssueCodeRequest is the payload for issuing a collection code.
type IssueCodeRequest struct {
	ActorID string `json:"actor_id"`
}

// CollectionCodeResponse carries the freshly issued collection code.
type CollectionCodeResponse struct {
	Code string `json:"code"`
}

// IssueCollectionCode handles POST /api/v1/orders/:orderId/collection-code.
func (s *Server) IssueCollectionCode(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req IssueCodeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewIssueCollectionCodeCommand(orderID, actorID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := s.issueCollectionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CollectionCodeResponse{Code: code})
}

// OverrideRequest is the payload for an administrative status override.
type OverrideRequest struct {
	AdminID       string `json:"admin_id"`
	Target        string `json:"target"`
	Justification string `json:"justification"`
}

// AdminOverride handles POST /api/v1/orders/:orderId/override.
func (s *Server) AdminOverride(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req OverrideRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdminOverrideCommand(orderID, adminID, target, req.Justification)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.adminOverrideHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CommissionResponse is the wire form of a commission record.
type CommissionResponse struct {
	ID          string     `json:"id"`
	AgentID     string     `json:"agent_id"`
	OrderID     string     `json:"order_id"`
	Type        string     `json:"type"`
	Rate        float64    `json:"rate"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
}

// ComputeCommission handles POST /api/v1/orders/:orderId/commission.
// The operation is idempotent and returns the stored record on repeat calls.
func (s *Server) ComputeCommission(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewComputeCommissionCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	record, err := s.computeCommissionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CommissionResponse{
		ID:          record.ID().String(),
		AgentID:     record.AgentID().String(),
		OrderID:     record.OrderID().String(),
		Type:        record.Type().String(),
		Rate:        record.Rate(),
		AmountCents: record.Amount().Cents(),
		Status:      record.Status().String(),
		CreatedAt:   record.CreatedAt(),
		ReviewedAt:  record.ReviewedAt(),
	})
}

// NewAgentRequest is the payload for agent registration.
type NewAgentRequest struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	SiteID *string `json:"site_id,omitempty"`
}

// AgentCreatedResponse returns the identifier assigned to a new agent.
type AgentCreatedResponse struct {
	ID string `json:"id"`
}

// RegisterAgent handles POST /api/v1/agents.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req NewAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var siteID *kernel.UUID
	if req.SiteID != nil {
		id, err := kernel.UUIDFromString(*req.SiteID)
		if err != nil {
			return errorResponse(ctx, err)
		}
		siteID = &id
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(agentID, req.Name, agent.Role(req.Role), siteID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AgentCreatedResponse{ID: agentID.String()})
}

// NewSiteRequest is the payload for pickup site registration.
type NewSiteRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
}

// SiteCreatedResponse returns the identifier assigned to a new site.
type SiteCreatedResponse struct {
	ID string `json:"id"`
}

// RegisterSite handles POST /api/v1/sites.
func (s *Server) RegisterSite(ctx echo.Context) error {
	var req NewSiteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	siteID := kernel.NewUUID()
	cmd, err := commands.NewRegisterSiteCommand(siteID, req.Name, location, req.Capacity)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerSiteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SiteCreatedResponse{ID: siteID.String()})
}

// ReviewRequest is the payload for reviewing a commission or payment proof.
type ReviewRequest struct {
	AdminID  string `json:"admin_id"`
	Decision string `json:"decision"`
}

// ReviewCommission handles POST /api/v1/commissions/:commissionId/review.
func (s *Server) ReviewCommission(ctx echo.Context) error {
	commissionID, err := pathUUID(ctx, "commissionId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReviewCommissionCommand(commissionID, adminID, commands.Decision(req.Decision))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.reviewCommissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewProofRequest is the payload for submitting a payment proof.
type NewProofRequest struct {
	OrderID     string `json:"order_id"`
	AgentID     string `json:"agent_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

// ProofCreatedResponse returns the identifier assigned to a new payment proof.
type ProofCreatedResponse struct {
	ID string `json:"id"`
}

// SubmitPaymentProof handles POST /api/v1/payment-proofs.
func (s *Server) SubmitPaymentProof(ctx echo.Context) error {
	var req NewProofRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	amount, err := kernel.NewMoney(req.AmountCents)
	if err != nil {
		return errorResponse(ctx, err)
	}

	proofID := kernel.NewUUID()
	cmd, err := commands.NewSubmitPaymentProofCommand(proofID, orderID, agentID, amount, req.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}

	record, err := s.submitProofHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	// A resubmission returns the already pending proof rather than a new one.
	status := http.StatusCreated
	if !record.ID().IsEqual(proofID) {
		status = http.StatusOK
	}
	return ctx.JSON(status, ProofCreatedResponse{ID: record.ID().String()})
}

// ReviewPaymentProof handles POST /api/v1/payment-proofs/:proofId/review.
func (s *Server) ReviewPaymentProof(ctx echo.Context) error {
	proofID, err := pathUUID(ctx, "proofId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	adminID, err := kernel.UUIDFromString(req.AdminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReviewPaymentProofCommand(proofID, adminID, commands.Decision(req.Decision))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.reviewProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimableOrderResponse is one entry of the claimable pool listing.
type ClaimableOrderResponse struct {
	ID         string `json:"id"`
	SellerID   string `json:"seller_id"`
	SiteID     string `json:"site_id"`
	TotalCents int64  `json:"total_cents"`
}

// ListClaimableOrders handles GET /api/v1/orders/claimable.
// An optional site_id query parameter narrows the pool to one site.
func (s *Server) ListClaimableOrders(ctx echo.Context) error {
	var siteID *kernel.UUID
	if raw := ctx.QueryParam("site_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		siteID = &id
	}

	query, err := queries.NewListClaimableOrdersQuery(siteID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.listClaimableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ClaimableOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ClaimableOrderResponse{
			ID:         o.ID.String(),
			SellerID:   o.SellerID.String(),
			SiteID:     o.SiteID.String(),
			TotalCents: o.Total.Cents(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StatusChangeResponse is one entry of an order's status history.
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]StatusChangeResponse, len(history))
	for i, change := range history {
		response[i] = StatusChangeResponse{
			Status:    change.Status,
			ChangedAt: change.ChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PendingCommissionResponse is one entry of the pending commission listing.
type PendingCommissionResponse struct {
	ID          string    `json:"id"`
	AgentID     string    `json:"agent_id"`
	OrderID     string    `json:"order_id"`
	Type        string    `json:"type"`
	Rate        float64   `json:"rate"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetPendingCommissions handles GET /api/v1/commissions/pending.
func (s *Server) GetPendingCommissions(ctx echo.Context) error {
	query := queries.NewGetPendingCommissionsQuery()

	pending, err := s.pendingCommissionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingCommissionResponse, len(pending))
	for i, record := range pending {
		response[i] = PendingCommissionResponse{
			ID:          record.ID.String(),
			AgentID:     record.AgentID.String(),
			OrderID:     record.OrderID.String(),
			Type:        record.Type,
			Rate:        record.Rate,
			AmountCents: record.Amount.Cents(),
			CreatedAt:   record.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// badRequest returns a 400 with a plain message, used for unparseable bodies.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP status codes:
// rejected input and policy violations are 400, missing objects 404,
// authorization failures 403, lost races and full sites 409.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAuthorization):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrCapacityExceeded):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPolicyViolation):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
