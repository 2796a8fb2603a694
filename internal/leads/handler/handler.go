// Package handler exposes the lead decision pipeline over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sales360_backend/internal/leads/domain"
	"sales360_backend/internal/leads/service"
	"sales360_backend/internal/leads/transport"
	"sales360_backend/platform/httpkit"
	"sales360_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid lead ID"
)

// Handler handles HTTP requests for the leads module.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the stateless pipeline routes.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/score", h.Score)
	group.POST("/route", h.Route)
	group.POST("/next-action", h.NextAction)
	group.POST("/objection", h.Objection)
	group.POST("/post-call-followup", h.PostCallFollowup)
	group.POST("/reengage", h.Reengage)

	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.GET("/:id/decisions", h.Decisions)
	group.POST("/:id/evaluate", h.Evaluate)
	group.POST("/:id/whatsapp-reply", h.WhatsAppReply)
	group.POST("/:id/outcome", h.RecordOutcome)
}

// RegisterCadenceRoutes mounts the cadence evaluation routes.
func (h *Handler) RegisterCadenceRoutes(group *gin.RouterGroup) {
	group.POST("/next-step", h.CadenceNextStep)
	group.POST("/run", h.CadenceRun)
}

// Score returns the scoring result for a lead.
// POST /api/v1/leads/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.LeadPayload
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Score(req.ToDomain()))
}

// Route returns the scoring result and the routing decision for a lead.
// POST /api/v1/leads/route
func (h *Handler) Route(c *gin.Context) {
	var req transport.LeadPayload
	if !h.bind(c, &req) {
		return
	}

	score, route := h.svc.Route(req.ToDomain())
	httpkit.OK(c, gin.H{
		"scoring": score,
		"routing": route,
	})
}

// NextAction scores, routes and generates the routed agent's action.
// POST /api/v1/leads/next-action
func (h *Handler) NextAction(c *gin.Context) {
	var req transport.LeadPayload
	if !h.bind(c, &req) {
		return
	}

	score, route, action := h.svc.NextAction(req.ToDomain())
	httpkit.OK(c, gin.H{
		"scoring":      score,
		"routing":      route,
		"agent_action": action,
	})
}

// Objection scores the lead and generates an objection-aware response.
// POST /api/v1/leads/objection
func (h *Handler) Objection(c *gin.Context) {
	var req transport.ObjectionRequest
	if !h.bind(c, &req) {
		return
	}

	score, response := h.svc.HandleObjection(req.Lead.ToDomain(), req.ObjectionText)
	httpkit.OK(c, gin.H{
		"scoring":            score,
		"objection_handling": response,
	})
}

// PostCallFollowup generates a scenario-selected follow-up payload.
// POST /api/v1/leads/post-call-followup
func (h *Handler) PostCallFollowup(c *gin.Context) {
	var req transport.PostCallRequest
	if !h.bind(c, &req) {
		return
	}

	action := h.svc.PostCallFollowup(req.Lead.ToDomain(), domain.Scenario(req.Scenario), req.LastTouchChannel)
	httpkit.OK(c, action)
}

// Reengage generates a re-engagement payload bucketed by inactivity.
// POST /api/v1/leads/reengage
func (h *Handler) Reengage(c *gin.Context) {
	var req transport.ReengagementRequest
	if !h.bind(c, &req) {
		return
	}

	action := h.svc.Reengage(req.Lead.ToDomain(), req.DaysInactive, req.LastTouchChannel)
	httpkit.OK(c, action)
}

// CadenceNextStep scores the lead and evaluates the cadence decision table.
// POST /api/v1/cadence/next-step
func (h *Handler) CadenceNextStep(c *gin.Context) {
	var req transport.CadenceStepRequest
	if !h.bind(c, &req) {
		return
	}

	score, decision := h.svc.CadenceStep(req.Lead.ToDomain(), req.State())
	httpkit.OK(c, gin.H{
		"scoring":          score,
		"cadence_decision": decision,
	})
}

// CadenceRun evaluates the cadence and dispatches the decided action.
// POST /api/v1/cadence/run
func (h *Handler) CadenceRun(c *gin.Context) {
	var req transport.CadenceRunRequest
	if !h.bind(c, &req) {
		return
	}

	score, decision, action := h.svc.CadenceRun(req.Lead.ToDomain(), req.State(), req.LastTouchChannel)
	httpkit.OK(c, gin.H{
		"scoring":          score,
		"cadence_decision": decision,
		"agent_action":     action,
	})
}

// Create persists a new lead and returns it with its initial score.
// POST /api/v1/leads
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if !h.bind(c, &req) {
		return
	}

	stored, score, err := h.svc.CreateLead(c.Request.Context(), req.ToDomain())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, gin.H{
		"lead":    transport.NewLeadResponse(stored.ID, stored.Lead, stored.Active, stored.CreatedAt, stored.UpdatedAt),
		"scoring": score,
	})
}

// Get retrieves a stored lead.
// GET /api/v1/leads/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	stored, err := h.svc.GetLead(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.NewLeadResponse(stored.ID, stored.Lead, stored.Active, stored.CreatedAt, stored.UpdatedAt))
}

// Decisions returns the decision timeline of a stored lead.
// GET /api/v1/leads/:id/decisions
func (h *Handler) Decisions(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.svc.ListDecisions(c.Request.Context(), id, limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"items": records, "total": len(records)})
}

// Evaluate runs the full pipeline over a stored lead using its persisted
// interaction state.
// POST /api/v1/leads/:id/evaluate
func (h *Handler) Evaluate(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	result, err := h.svc.EvaluateStored(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// WhatsAppReply marks that the lead replied on WhatsApp.
// POST /api/v1/leads/:id/whatsapp-reply
func (h *Handler) WhatsAppReply(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	if httpkit.HandleError(c, h.svc.MarkWhatsAppReplied(c.Request.Context(), id)) {
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordOutcome stores an externally reported interaction outcome.
// POST /api/v1/leads/:id/outcome
func (h *Handler) RecordOutcome(c *gin.Context) {
	id, ok := h.leadID(c)
	if !ok {
		return
	}

	var req struct {
		Outcome string `json:"outcome" validate:"required,oneof=missed_call no_show after_call reminder"`
	}
	if !h.bind(c, &req) {
		return
	}

	if httpkit.HandleError(c, h.svc.RecordOutcome(c.Request.Context(), id, domain.Outcome(req.Outcome))) {
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return false
	}
	return true
}

func (h *Handler) leadID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}
