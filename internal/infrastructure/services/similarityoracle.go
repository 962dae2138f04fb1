package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"civicroute/internal/domain/incident"
	"civicroute/internal/shared/config"
	"civicroute/internal/shared/logger"
)

const (
	// HTTP request timeout used when the config leaves it unset.
	defaultOracleTimeout = 5 * time.Second
	// Maximum response body size for the oracle API (1MB).
	maxOracleResponseSize = 1 << 20
)

// oracleRequest is the wire format for a nearest-neighbor query.
type oracleRequest struct {
	Embedding []float64 `json:"embedding"`
	TopK      int       `json:"top_k"`
}

type oracleMatch struct {
	ComplaintID uint    `json:"complaint_id"`
	Score       float64 `json:"score"`
}

type oracleResponse struct {
	Matches []oracleMatch `json:"matches"`
}

// HTTPSimilarityOracle queries the AI similarity service over HTTP. Any
// transport or decoding failure surfaces as a plain error; the use case layer
// decides how hard an unavailable oracle should fail.
type HTTPSimilarityOracle struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPSimilarityOracle(cfg *config.OracleConfig, logger logger.Interface) *HTTPSimilarityOracle {
	timeout := defaultOracleTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &HTTPSimilarityOracle{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

var _ incident.SimilarityOracle = (*HTTPSimilarityOracle)(nil)

func (s *HTTPSimilarityOracle) FindSimilar(ctx context.Context, embedding []float64, k int) ([]incident.Match, error) {
	payload, err := json.Marshal(oracleRequest{Embedding: embedding, TopK: k})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/similar", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query similarity oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected oracle status code: %d", resp.StatusCode)
	}

	var data oracleResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxOracleResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode oracle response: %w", err)
	}

	matches := make([]incident.Match, 0, len(data.Matches))
	for _, m := range data.Matches {
		if m.Score < 0 || m.Score > 1 {
			s.logger.Warnw("oracle returned out-of-range score, skipping match",
				"complaint_id", m.ComplaintID,
				"score", m.Score)
			continue
		}
		matches = append(matches, incident.Match{ComplaintID: m.ComplaintID, Score: m.Score})
	}

	return matches, nil
}
