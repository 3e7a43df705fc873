package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs   *audit.Logger
	loc    *time.Location
	render *Renderer
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location, render *Renderer) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, render: render}
}

type AuditFilters struct {
	Action string
	Entity string
	From   string
	To     string
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	filters := AuditFilters{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	q := audit.Query{
		Action: filters.Action,
		Entity: filters.Entity,
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Datas no timezone da barbearia, "to" inclusivo
	// --------------------------------------------------
	if from, err := time.ParseInLocation("2006-01-02", filters.From, h.loc); err == nil {
		q.From = from
	} else {
		filters.From = ""
	}
	if to, err := time.ParseInLocation("2006-01-02", filters.To, h.loc); err == nil {
		q.To = to.AddDate(0, 0, 1)
	} else {
		filters.To = ""
	}

	q.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		h.render.Fail(c, err, "/admin/appointments", nil)
		return
	}

	h.render.HTML(c, http.StatusOK, "admin_audit_logs", gin.H{
		"Logs":       logs,
		"Total":      total,
		"PageNumber": q.Page,
		"Limit":      q.Limit,
		"HasNext":    int64(q.Page*q.Limit) < total,
		"Filters":    filters,
	})
}
