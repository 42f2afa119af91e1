// Package search delegates general medical questions to the Exa web
// search API.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medassist/medassist-api/internal/model"
	"github.com/medassist/medassist-api/pkg/logger"
)

// Config holds search provider settings.
type Config struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	NumResults int           `mapstructure:"num_results"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type exaRequest struct {
	Query      string      `json:"query"`
	Type       string      `json:"type"`
	NumResults int         `json:"numResults"`
	Contents   exaContents `json:"contents"`
}

type exaContents struct {
	Text bool `json:"text"`
}

// Service implements web search over the Exa REST API.
type Service struct {
	cfg    Config
	http   *http.Client
	logger *logger.Logger
}

func NewService(cfg Config, log *logger.Logger) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.exa.ai"
	}
	if cfg.NumResults <= 0 {
		cfg.NumResults = 25
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Service{cfg: cfg, http: &http.Client{}, logger: log}
}

// Search runs a contextual web search. Previous queries are prepended as
// context lines. A timeout yields an empty result set rather than an
// error so callers can still answer.
func (s *Service) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error) {
	query := req.Query
	if len(req.PreviousQueries) > 0 {
		var lines []string
		for _, q := range req.PreviousQueries {
			lines = append(lines, "Previous question: "+q)
		}
		query = strings.Join(lines, "\n") + "\n\nNow answer the question: " + req.Query
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(exaRequest{
		Query:      query,
		Type:       "auto",
		NumResults: s.cfg.NumResults,
		Contents:   exaContents{Text: true},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", s.cfg.APIKey)

	resp, err := s.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			s.logger.Warn("search timed out, returning empty results")
			return &model.SearchResponse{Results: []model.SearchResult{}}, nil
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("search API returned %s: %s", resp.Status, string(msg))
	}

	var out model.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if out.Results == nil {
		out.Results = []model.SearchResult{}
	}
	return &out, nil
}
