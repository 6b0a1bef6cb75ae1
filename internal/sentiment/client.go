package sentiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"talentmate/internal/config"
	"talentmate/internal/domain/interview"
)

// Client calls the external sentiment inference service. Scoring
// treats every failure here as "no sentiment", so errors are returned
// plainly and never wrapped in handler-facing types.
type Client struct {
	url  string
	http *http.Client
}

// New returns nil when no service URL is configured; the scorer
// accepts a nil analyzer.
func New(cfg config.SentimentConfig) *Client {
	if cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		url:  cfg.URL,
		http: &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Client) Analyze(text string) (interview.SentimentResult, error) {
	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return interview.SentimentResult{}, err
	}

	resp, err := c.http.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return interview.SentimentResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interview.SentimentResult{}, fmt.Errorf("sentiment service returned status %d", resp.StatusCode)
	}

	var out analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return interview.SentimentResult{}, err
	}

	return interview.SentimentResult{Label: out.Label, Confidence: out.Score}, nil
}
