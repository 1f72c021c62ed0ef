package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// --------------------------------------------------
// Full menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories,
	})
}

// --------------------------------------------------
// Search / filter projection
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	search := c.Query("q")
	filter := c.DefaultQuery("filter", FilterAll)

	if !ValidFilter(filter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown filter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": Project(h.catalog.Categories, search, filter),
	})
}
