package favorites

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
)

type Handler struct {
	tracker *Tracker
	catalog *catalog.Catalog
}

func NewHandler(tracker *Tracker, cat *catalog.Catalog) *Handler {
	return &Handler{tracker: tracker, catalog: cat}
}

// --------------------------------------------------
// List favorites
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.tracker.Items(),
	})
}

// --------------------------------------------------
// Toggle favorite
// --------------------------------------------------
func (h *Handler) Toggle(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if _, ok := h.catalog.Item(itemID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	added := h.tracker.Toggle(itemID)

	message := "تم الإزالة من المفضلة"
	if added {
		message = "تم الإضافة للمفضلة"
	}

	c.JSON(http.StatusOK, gin.H{
		"favorite": added,
		"message":  message,
	})
}
