package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Get)
}

// Get always answers 200; a store fault behind the scenes yields the
// zeroed snapshot rather than an error page.
func (h *Handler) Get(c *gin.Context) {
	metrics := h.svc.Compute(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": metrics})
}
