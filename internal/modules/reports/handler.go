package reports

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
	rg.GET("/reports", h.List)
	rg.GET("/reports/export", h.ExportCSV)
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.svc.Rows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rows": rows}})
}

func (h *Handler) ExportCSV(c *gin.Context) {
	rows, err := h.svc.Rows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="report.csv"`)
	if err := WriteCSV(c.Writer, rows); err != nil {
		// headers are flushed at this point; all we can do is log via gin
		_ = c.Error(err)
	}
}
