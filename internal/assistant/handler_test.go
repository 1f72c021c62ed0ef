package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/logger"
)

type stubClient struct {
	reply *Reply
	err   error
}

func (s *stubClient) Ask(_ context.Context, _ string) (*Reply, error) {
	return s.reply, s.err
}

func setupChatRouter(client Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(client, logger.New("assistant-test"))
	r.POST("/assistant/chat", handler.Chat)

	return r
}

func chat(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/assistant/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	r := setupChatRouter(&stubClient{
		reply: &Reply{
			Text: "المطعم في أرجان.",
			Citations: []Citation{
				{Kind: CitationMaps, URI: "https://maps.google.com/?cid=42"},
			},
		},
	})

	w := chat(t, r, map[string]string{"message": "فين المطعم؟"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Reply     string     `json:"reply"`
		Citations []Citation `json:"citations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp.Reply != "المطعم في أرجان." {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if len(resp.Citations) != 1 || resp.Citations[0].Kind != CitationMaps {
		t.Errorf("unexpected citations %v", resp.Citations)
	}
}

func TestChatFallbackOnClientError(t *testing.T) {
	r := setupChatRouter(&stubClient{err: errors.New("network down")})

	w := chat(t, r, map[string]string{"message": "فين المطعم؟"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with fallback, got %d", w.Code)
	}

	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp.Reply != FallbackMessage {
		t.Errorf("expected fallback message, got %q", resp.Reply)
	}
}

func TestChatMissingMessage(t *testing.T) {
	r := setupChatRouter(&stubClient{})

	w := chat(t, r, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
