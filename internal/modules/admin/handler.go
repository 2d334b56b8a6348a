package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"windowupgrades/internal/domain"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the admin surface. The group is expected to be
// wrapped by the staff auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.ListLeads)
	rg.GET("/leads/:id", h.GetLead)
	rg.PATCH("/leads/:id/status", h.SetLeadStatus)
	rg.DELETE("/leads/:id", h.DeleteLead)

	rg.GET("/quotes", h.ListQuotes)
	rg.POST("/quotes", h.CreateQuote)
	rg.DELETE("/quotes/:id", h.DeleteQuote)

	rg.GET("/orders", h.ListOrders)
	rg.GET("/orders/:id", h.GetOrder)
	rg.POST("/orders", h.CreateOrder)
	rg.PUT("/orders/:id", h.UpdateOrder)
	rg.DELETE("/orders/:id", h.DeleteOrder)

	rg.GET("/projects", h.ListProjects)
	rg.POST("/projects", h.CreateProject)
	rg.PATCH("/projects/:id/status", h.SetProjectStatus)
}

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:      c.GetInt64("user_id"),
		Name:    c.GetString("user_name"),
		IsStaff: c.GetBool("is_staff"),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid id"}})
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return limit, offset
}

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Record not found"}})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": gin.H{"code": "FORBIDDEN", "message": "Staff authorization required"}})
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid input"}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
	}
}

func (h *Handler) ListLeads(c *gin.Context) {
	limit, offset := pageParams(c)
	leads, total, err := h.svc.ListLeads(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"leads": leads, "total": total}})
}

func (h *Handler) GetLead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	lead, err := h.svc.GetLead(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": lead})
}

func (h *Handler) SetLeadStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetLeadStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	if err := h.svc.SetLeadStatus(c.Request.Context(), id, req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteLead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteLead(c.Request.Context(), actorFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListQuotes(c *gin.Context) {
	limit, offset := pageParams(c)
	quotes, total, err := h.svc.ListQuotes(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"quotes": quotes, "total": total}})
}

func (h *Handler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	quote, err := h.svc.CreateQuote(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": quote})
}

func (h *Handler) DeleteQuote(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteQuote(c.Request.Context(), actorFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListOrders(c *gin.Context) {
	limit, offset := pageParams(c)
	orders, total, err := h.svc.ListOrders(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"orders": orders, "total": total}})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	order, err := h.svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	order, err := h.svc.UpdateOrder(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(c.Request.Context(), actorFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListProjects(c *gin.Context) {
	limit, offset := pageParams(c)
	projects, total, err := h.svc.ListProjects(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"projects": projects, "total": total}})
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	project, err := h.svc.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": project})
}

func (h *Handler) SetProjectStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetProjectStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	if err := h.svc.SetProjectStatus(c.Request.Context(), id, req); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
