// Package stylist proxies outfit suggestions from the Gemini text-generation
// API. The contract toward the rest of the service is deliberately soft:
// Suggest always resolves to a string, never an error. Any failure collapses
// into a fixed fallback message.
package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/darji-master/orders-service/internal/logger"
)

const Fallback = "Sorry, the style assistant is temporarily unavailable. Please try again later."

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint, used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Suggest asks for an outfit recommendation for the given occasion, season and
// customer preferences. It never fails the caller.
func (c *Client) Suggest(ctx context.Context, eventType, season, preferences string) string {
	if c.apiKey == "" {
		logger.Warn("stylist called without api key")
		return Fallback
	}

	prompt := fmt.Sprintf(`You are an expert Indian men's fashion consultant and tailor.
Suggest a detailed outfit combination for an Indian male.

Event: %s
Season: %s
Preferences: %s

Provide the suggestion in this format:
**Fabric**: [Fabric type and color]
**Style**: [Cut, fit, collar style]
**Details**: [Buttons, embroidery, cuffs]
**Why**: [Short explanation]`, eventType, season, preferences)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		logger.Warn("stylist marshal failed", "err", err)
		return Fallback
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Warn("stylist request build failed", "err", err)
		return Fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("stylist call failed", "err", err)
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("stylist non-200", "status", resp.StatusCode)
		return Fallback
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Warn("stylist decode failed", "err", err)
		return Fallback
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		logger.Warn("stylist empty response")
		return Fallback
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "Could not generate a suggestion."
	}
	return text
}
