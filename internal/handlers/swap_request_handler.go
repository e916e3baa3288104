package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/escala-trocas/internal/domain/swaprequest"
	"github.com/BruksfildServices01/escala-trocas/internal/dto"
	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/httpresp"
	"github.com/BruksfildServices01/escala-trocas/internal/metrics"
	ucSwap "github.com/BruksfildServices01/escala-trocas/internal/usecase/swaprequest"
)

const (
	defaultRequestsLimit = 20
	maxRequestsLimit     = 100
)

type SwapRequestHandler struct {
	createUC       *ucSwap.CreateSwapRequest
	listUC         *ucSwap.ListSwapRequests
	getUC          *ucSwap.GetSwapRequest
	updateStatusUC *ucSwap.UpdateSwapRequestStatus
	metrics        *metrics.Metrics
	log            *zap.Logger
}

func NewSwapRequestHandler(
	createUC *ucSwap.CreateSwapRequest,
	listUC *ucSwap.ListSwapRequests,
	getUC *ucSwap.GetSwapRequest,
	updateStatusUC *ucSwap.UpdateSwapRequestStatus,
	m *metrics.Metrics,
	log *zap.Logger,
) *SwapRequestHandler {
	return &SwapRequestHandler{
		createUC:       createUC,
		listUC:         listUC,
		getUC:          getUC,
		updateStatusUC: updateStatusUC,
		metrics:        m,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateSwapRequestRequest has no binding tags: the rule set reports every
// violated field at once. status and submittedById are not accepted.
type CreateSwapRequestRequest struct {
	EmployeeIDOut    string  `json:"employeeIdOut"`
	EmployeeIDIn     string  `json:"employeeIdIn"`
	SwapDate         string  `json:"swapDate"`
	PaybackDate      string  `json:"paybackDate"`
	EmployeeFunction string  `json:"employeeFunction"`
	GroupOut         string  `json:"groupOut"`
	GroupIn          string  `json:"groupIn"`
	Observation      *string `json:"observation"`
}

type UpdateStatusRequest struct {
	Status      string  `json:"status" binding:"required,swap_status"`
	Observation *string `json:"observation"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SwapRequestHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateSwapRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucSwap.CreateInput{
		Actor:            actor,
		EmployeeIDOut:    req.EmployeeIDOut,
		EmployeeIDIn:     req.EmployeeIDIn,
		SwapDate:         req.SwapDate,
		PaybackDate:      req.PaybackDate,
		EmployeeFunction: req.EmployeeFunction,
		GroupOut:         req.GroupOut,
		GroupIn:          req.GroupIn,
		Observation:      trimmedOrNil(req.Observation),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if h.metrics != nil {
		h.metrics.SwapRequestCreated(created.EventType)
	}

	httpresp.Created(c, gin.H{"request": dto.FromSwapRequest(created)})
}

// ======================================================
// LIST
// ======================================================

func (h *SwapRequestHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	filter, paging, ve := parseListFilter(c)
	if ve.HasIssues() {
		httperr.Validation(c, ve)
		return
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Page(c, "requests", paging, total, dto.FromSwapRequests(items))
}

func parseListFilter(c *gin.Context) (domain.ListFilter, httpresp.Paging, *httperr.ValidationError) {
	ve := httperr.NewValidation()
	paging := httpresp.ParsePaging(c, defaultRequestsLimit, maxRequestsLimit)

	f := domain.ListFilter{
		Page:     paging.Page,
		Limit:    paging.Limit,
		SortBy:   domain.SortSwapDate,
		SortDesc: strings.EqualFold(c.Query("order"), "desc"),
	}

	if v := c.Query("status"); v != "" {
		s := domain.Status(strings.ToUpper(v))
		if s.Valid() {
			f.Status = &s
		} else {
			ve.Add("status", "Status inválido.")
		}
	}
	if v := c.Query("eventType"); v != "" {
		e := domain.EventType(strings.ToUpper(v))
		if e.Valid() {
			f.EventType = &e
		} else {
			ve.Add("eventType", "Tipo de evento inválido.")
		}
	}
	if v := c.Query("group"); v != "" {
		g := domain.ReliefGroup(strings.ToUpper(v))
		if g.Valid() {
			f.Group = &g
		} else {
			ve.Add("group", "Grupo inválido.")
		}
	}
	if v := c.Query("from"); v != "" {
		if d, err := domain.ParseDate(v); err == nil {
			f.From = &d
		} else {
			ve.Add("from", "Data inválida.")
		}
	}
	if v := c.Query("to"); v != "" {
		if d, err := domain.ParseDate(v); err == nil {
			f.To = &d
		} else {
			ve.Add("to", "Data inválida.")
		}
	}
	if v := c.Query("includeMirrors"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			ve.Add("includeMirrors", "Valor inválido.")
		}
		f.IncludeMirrors = b
	}
	switch domain.SortField(c.Query("sortBy")) {
	case "", domain.SortSwapDate:
	case domain.SortCreatedAt:
		f.SortBy = domain.SortCreatedAt
	case domain.SortStatus:
		f.SortBy = domain.SortStatus
	default:
		ve.Add("sortBy", "Ordenação inválida.")
	}

	return f, paging, ve
}

// ======================================================
// GET
// ======================================================

func (h *SwapRequestHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	req, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"request": dto.FromSwapRequest(req)})
}

// ======================================================
// STATUS
// ======================================================

func (h *SwapRequestHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), ucSwap.UpdateStatusInput{
		Actor:       actor,
		ID:          id,
		Status:      req.Status,
		Observation: trimmedOrNil(req.Observation),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"request": dto.FromSwapRequest(updated)})
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
