package inbox

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.List)
	rg.GET("/messages/:id", h.View)
	rg.POST("/messages", h.Add)
	rg.POST("/messages/:id/read", h.MarkRead)
	rg.PATCH("/messages/:id/read", h.UpdateReadStatus)
	rg.POST("/messages/:id/reply", h.Reply)
	rg.DELETE("/messages/:id", h.Delete)
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

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Message not found"}})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": gin.H{"code": "FORBIDDEN", "message": "Staff authorization required"}})
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid input"}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
	}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	msgs, total, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"messages": msgs, "total": total}})
}

// View returns the message detail and marks it read as a side effect.
func (h *Handler) View(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	msg, err := h.svc.View(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}

func (h *Handler) Add(c *gin.Context) {
	var req AddMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	msg, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": msg})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) UpdateReadStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateReadStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	if err := h.svc.UpdateReadStatus(c.Request.Context(), id, req.IsRead); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Reply(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, ErrValidation)
		return
	}
	msg, err := h.svc.Reply(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": msg})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
