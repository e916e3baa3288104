package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/escala-trocas/internal/httperr"
	"github.com/BruksfildServices01/escala-trocas/internal/httpresp"
	"github.com/BruksfildServices01/escala-trocas/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

var auditSortColumns = map[string]string{
	"timestamp":           "timestamp",
	"action":              "action",
	"userLoginIdentifier": "user_login_identifier",
}

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	paging := httpresp.ParsePaging(c, defaultAuditLimit, maxAuditLimit)
	ve := httperr.NewValidation()

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if v := c.Query("userId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			q = q.Where("user_id = ?", id)
		} else {
			ve.Add("userId", "Identificador inválido.")
		}
	}

	if rt := c.Query("targetResourceType"); rt != "" {
		q = q.Where("target_resource_type = ?", rt)
	}

	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(details) LIKE ? OR LOWER(user_login_identifier) LIKE ?)", like, like)
	}

	if v := c.Query("from"); v != "" {
		if from, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where(`"timestamp" >= ?`, from)
		} else {
			ve.Add("from", "Data inválida.")
		}
	}

	if v := c.Query("to"); v != "" {
		if to, err := time.Parse("2006-01-02", v); err == nil {
			q = q.Where(`"timestamp" < ?`, to.Add(24*time.Hour))
		} else {
			ve.Add("to", "Data inválida.")
		}
	}

	column := "timestamp"
	if v := c.Query("sortBy"); v != "" {
		col, ok := auditSortColumns[v]
		if !ok {
			ve.Add("sortBy", "Ordenação inválida.")
		}
		column = col
	}
	desc := !strings.EqualFold(c.Query("order"), "asc")

	if ve.HasIssues() {
		httperr.Validation(c, ve)
		return
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	logs := []models.AuditLog{}
	if err := base.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Limit(paging.Limit).
		Offset(paging.Offset()).
		Find(&logs).Error; err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Page(c, "logs", paging, total, logs)
}
