package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// systemInstruction pins the assistant to the restaurant's identity and
// address so location questions are grounded correctly.
const systemInstruction = "You are a helpful assistant for Nile Gourmet restaurant. " +
	"Address: Dubai, Al Barsha South 3, Arjan, Rose Palace Building, Shop 15. " +
	"Respond in Arabic. If the user asks about location, directions, or nearby places, " +
	"use the Google Maps tool."

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		baseURL: "https://generativelanguage.googleapis.com",
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Ask sends the visitor's question to Gemini with the Google Maps tool
// enabled and resolves the reply plus its grounding citations.
func (g *GeminiClient) Ask(ctx context.Context, question string) (*Reply, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return nil, errors.New("missing GEMINI_MODEL")
	}
	if question == "" {
		return nil, errors.New("empty question")
	}

	url := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]string{
					{"text": question},
				},
			},
		},
		"systemInstruction": map[string]any{
			"parts": []map[string]string{
				{"text": systemInstruction},
			},
		},
		"tools": []map[string]any{
			{"google_maps": map[string]any{}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	return parseReply(raw)
}

// parseReply maps the generateContent response onto Reply, turning the
// untyped grounding chunks into tagged citations.
func parseReply(raw []byte) (*Reply, error) {
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
			GroundingMetadata struct {
				GroundingChunks []struct {
					Web *struct {
						URI   string `json:"uri"`
						Title string `json:"title"`
					} `json:"web"`
					Maps *struct {
						URI   string `json:"uri"`
						Title string `json:"title"`
					} `json:"maps"`
				} `json:"groundingChunks"`
			} `json:"groundingMetadata"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty gemini response")
	}

	candidate := result.Candidates[0]

	text := ""
	for _, p := range candidate.Content.Parts {
		text += p.Text
	}
	if text == "" {
		return nil, errors.New("empty gemini response")
	}

	reply := &Reply{Text: text}
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		switch {
		case chunk.Web != nil && chunk.Web.URI != "":
			reply.Citations = append(reply.Citations, Citation{
				Kind: CitationWeb, URI: chunk.Web.URI, Title: chunk.Web.Title,
			})
		case chunk.Maps != nil && chunk.Maps.URI != "":
			reply.Citations = append(reply.Citations, Citation{
				Kind: CitationMaps, URI: chunk.Maps.URI, Title: chunk.Maps.Title,
			})
		}
	}

	return reply, nil
}
