package assistant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
)

// FallbackMessage is shown whenever the assistant call fails; the failure
// is logged but never surfaced or retried.
const FallbackMessage = "حدث خطأ في الاتصال بالمساعد الذكي."

type Handler struct {
	client Client
	log    logger.Logger
}

func NewHandler(client Client, log logger.Logger) *Handler {
	return &Handler{client: client, log: log}
}

type chatIn struct {
	Message string `json:"message" binding:"required"`
}

// --------------------------------------------------
// Chat with the location assistant
// --------------------------------------------------
func (h *Handler) Chat(c *gin.Context) {
	var in chatIn
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.client.Ask(c.Request.Context(), in.Message)
	if err != nil {
		h.log.Error("assistant_chat", "assistant call failed", c.GetString("requestID"), nil, err)
		c.JSON(http.StatusOK, gin.H{
			"reply":     FallbackMessage,
			"citations": []Citation{},
		})
		return
	}

	citations := reply.Citations
	if citations == nil {
		citations = []Citation{}
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":     reply.Text,
		"citations": citations,
	})
}
