package cart

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/catalog"
)

type Handler struct {
	engine  *Engine
	catalog *catalog.Catalog
}

func NewHandler(engine *Engine, cat *catalog.Catalog) *Handler {
	return &Handler{engine: engine, catalog: cat}
}

type addItemIn struct {
	ItemID  int    `json:"item_id" binding:"required"`
	Variant string `json:"variant"`
}

type changeQtyIn struct {
	Delta int `json:"delta" binding:"required"`
}

type lineView struct {
	LineID    string               `json:"line_id"`
	ItemID    int                  `json:"item_id"`
	NameAR    string               `json:"name_ar"`
	NameEN    string               `json:"name_en"`
	Variant   *catalog.SizeVariant `json:"variant,omitempty"`
	Qty       int                  `json:"qty"`
	UnitPrice string               `json:"unit_price"`
	Subtotal  string               `json:"subtotal"`
}

func viewOf(l Line) lineView {
	return lineView{
		LineID:    l.Key.String(),
		ItemID:    l.Key.ItemID,
		NameAR:    l.NameAR,
		NameEN:    l.NameEN,
		Variant:   l.Variant,
		Qty:       l.Qty,
		UnitPrice: l.UnitPrice.StringFixed(2),
		Subtotal:  l.Subtotal().StringFixed(2),
	}
}

// --------------------------------------------------
// Current cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	lines := h.engine.Lines()
	views := make([]lineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, viewOf(l))
	}

	c.JSON(http.StatusOK, gin.H{
		"items": views,
		"total": h.engine.Total().StringFixed(2),
		"count": h.engine.Count(),
	})
}

// --------------------------------------------------
// Add item (merges on same item+size)
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	var in addItemIn
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, ok := h.catalog.Item(in.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	line, err := h.engine.Add(item, in.Variant)
	if errors.Is(err, ErrVariantRequired) || errors.Is(err, ErrUnknownVariant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"line":    viewOf(line),
		"message": fmt.Sprintf("تم إضافة %s للسلة", item.NameAR),
	})
}

// --------------------------------------------------
// Change quantity (line removed at qty <= 0)
// --------------------------------------------------
func (h *Handler) UpdateQty(c *gin.Context) {
	var in changeQtyIn
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	line, ok := h.engine.ChangeQty(c.Param("id"), in.Delta)
	if !ok {
		// Unknown line id is tolerated, nothing changed.
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated": true,
		"line":    viewOf(line),
		"total":   h.engine.Total().StringFixed(2),
	})
}

// --------------------------------------------------
// Remove line
// --------------------------------------------------
func (h *Handler) RemoveLine(c *gin.Context) {
	_, ok := h.engine.Remove(c.Param("id"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{"removed": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"removed": true,
		"message": "تم حذف العنصر من السلة",
	})
}

// --------------------------------------------------
// Empty the cart
// --------------------------------------------------
func (h *Handler) Clear(c *gin.Context) {
	h.engine.Clear()
	c.JSON(http.StatusOK, gin.H{
		"message": "تم تفريغ السلة",
	})
}
