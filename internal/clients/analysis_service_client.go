package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/reviewflow/internal/models"
)

const ANALYZE_PATH = "/analyze"

// StatusError reports a non-2xx answer from the analysis service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service returned status %d", e.StatusCode)
}

// AnalysisServiceClient talks to the central analysis service.
type AnalysisServiceClient struct {
	Client  *http.Client
	BaseURL string
	Retries int
	backoff time.Duration
}

func NewAnalysisServiceClient(baseURL string, timeout time.Duration, retries int) *AnalysisServiceClient {
	if retries < 1 {
		retries = 1
	}
	if retries > MAX_RETRIES {
		retries = MAX_RETRIES
	}
	slog.Debug("[AnalysisServiceClient] Initializing Client",
		slog.String("base_url", baseURL),
		slog.Duration("timeout", timeout),
		slog.Int("retries", retries))

	return &AnalysisServiceClient{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: baseURL,
		Retries: retries,
		backoff: INITIAL_BACKOFF,
	}
}

// Analyze posts the review text and returns the raw 2xx response body.
func (s *AnalysisServiceClient) Analyze(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	body, err := s.postJSON(ctx, s.BaseURL+ANALYZE_PATH, models.AnalyzeRequest{Text: text})
	if err != nil {
		slog.Warn("[AnalysisServiceClient] Analysis request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, err
	}

	slog.Debug("[AnalysisServiceClient] Analysis request successful",
		slog.Duration("elapsed", time.Since(start)))
	return body, nil
}

// DoWithRetry retries transport errors and 5xx answers with exponential
// backoff. build is called once per attempt so request bodies are fresh.
func (s *AnalysisServiceClient) DoWithRetry(ctx context.Context, build func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := s.backoff

	for attempt := 0; attempt < s.Retries; attempt++ {
		var req *http.Request
		req, err = build()
		if err != nil {
			return nil, err
		}

		resp, err = s.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if attempt == s.Retries-1 {
			break
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[AnalysisServiceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, MAX_BACKOFF)
	}

	return resp, err
}

func (s *AnalysisServiceClient) postJSON(ctx context.Context, endpoint string, input any) ([]byte, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	resp, err := s.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", USER_AGENT)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("[AnalysisServiceClient] Non-2xx response",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
