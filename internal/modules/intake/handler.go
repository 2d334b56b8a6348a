package intake

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"windowupgrades/internal/monitoring"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/leads", h.SubmitLead)
	public.POST("/leads/quick", h.QuickLead)
	public.POST("/quotes", h.SubmitQuote)
}

func (h *Handler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}

	out, err := h.svc.SubmitLead(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	h.respondLead(c, out)
}

func (h *Handler) QuickLead(c *gin.Context) {
	var req QuickLeadRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}

	out, err := h.svc.QuickLead(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	h.respondLead(c, out)
}

func (h *Handler) SubmitQuote(c *gin.Context) {
	var req SubmitQuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}

	out, err := h.svc.SubmitQuote(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	if !out.Admitted() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "VALIDATION_FAILED", "message": "Please correct the errors below", "fields": out.Reasons}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": out})
}

func (h *Handler) respondLead(c *gin.Context, out *LeadOutcome) {
	if out.Admitted() {
		monitoring.LeadsAdmitted.Inc()
	}
	if !out.Admitted() {
		if out.Duplicate {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "DUPLICATE_EMAIL", "message": duplicateEmailReason, "fields": out.Reasons}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "VALIDATION_FAILED", "message": "Please correct the errors below", "fields": out.Reasons}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": out})
}
