package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/reviewflow/internal/db"
	"github.com/spacesedan/reviewflow/internal/models"
	"github.com/spacesedan/reviewflow/internal/processing"
)

const MAX_BODY_BYTES = 1 << 20

type Classifier interface {
	Classify(ctx context.Context, text string) (models.AnalysisResult, error)
}

type Coordinator interface {
	Analyze(ctx context.Context, text string) (models.AnalysisResult, error)
}

type LocalAnalyzer interface {
	Analyze(text string) models.AnalysisResult
}

type SettingsStore interface {
	Settings(ctx context.Context) (models.StoreSettings, error)
	SaveSettings(ctx context.Context, settings models.StoreSettings) (models.StoreSettings, error)
	SetAPIKey(ctx context.Context, key string) error
	ClearAPIKey(ctx context.Context) error
}

type Deps struct {
	// ServerClassifier is nil when the server has no AI key.
	ServerClassifier Classifier
	LocalFallback    bool
	Local            LocalAnalyzer
	Tiered           Coordinator
	Reviews          db.ReviewSource
	Settings         SettingsStore
	// Checks reports dependency state on /api/health; nil omits it.
	Checks func() map[string]bool
}

type Handler struct {
	deps Deps
	now  func() time.Time
}

func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps, now: time.Now}
}

type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Checks    map[string]bool `json:"checks,omitempty"`
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", h.Analyze)
	mux.HandleFunc("POST /api/analyze/tiered", h.AnalyzeTiered)
	mux.HandleFunc("GET /api/reviews", h.ListReviews)
	mux.HandleFunc("GET /api/reviews/metrics", h.Metrics)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/settings", h.PutSettings)
	mux.HandleFunc("PUT /api/settings/key", h.PutAPIKey)
	mux.HandleFunc("DELETE /api/settings/key", h.DeleteAPIKey)
	return mux
}

// Analyze runs the server's own remote classification. With local fallback
// enabled, a missing key or a remote failure is answered locally.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	if h.deps.ServerClassifier == nil {
		if h.deps.LocalFallback {
			fallback := h.deps.Local.Analyze(text)
			fallback.Error = models.SERVER_KEY_MISSING_ERROR
			RespondJSON(w, http.StatusOK, models.PayloadFromResult(fallback))
			return
		}
		RespondError(w, http.StatusInternalServerError, "Server AI key not configured", "")
		return
	}

	result, err := h.deps.ServerClassifier.Classify(r.Context(), text)
	if err != nil {
		slog.Error("[Handler] Server AI error", slog.String("error", err.Error()))
		if h.deps.LocalFallback {
			fallback := h.deps.Local.Analyze(text)
			fallback.Error = models.LOCAL_FALLBACK_ERROR
			RespondJSON(w, http.StatusOK, models.PayloadFromResult(fallback))
			return
		}
		RespondError(w, http.StatusInternalServerError, "AI processing failed", err.Error())
		return
	}

	RespondJSON(w, http.StatusOK, models.PayloadFromResult(result))
}

type TieredResponse struct {
	models.AnalysisResult
	Provenance string            `json:"provenance"`
	Confidence models.Confidence `json:"confidence"`
}

func (h *Handler) AnalyzeTiered(w http.ResponseWriter, r *http.Request) {
	text, ok := decodeText(w, r)
	if !ok {
		return
	}

	result, err := h.deps.Tiered.Analyze(r.Context(), text)
	if err != nil {
		RespondError(w, MapHTTPStatus(err), err.Error(), "")
		return
	}

	RespondJSON(w, http.StatusOK, TieredResponse{
		AnalysisResult: result,
		Provenance:     result.Provenance(),
		Confidence:     models.ConfidenceFor(result.NormalizedScore),
	})
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.deps.Reviews.ListReviews(r.Context())
	if err != nil {
		slog.Error("[Handler] Failed to list reviews", slog.String("error", err.Error()))
		RespondError(w, MapHTTPStatus(err), "Failed to load reviews", "")
		return
	}

	query := r.URL.Query()
	RespondJSON(w, http.StatusOK, db.FilterReviews(reviews, models.ReviewFilter{
		Sentiment: query.Get("sentiment"),
		Query:     query.Get("q"),
	}))
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.deps.Reviews.ListReviews(r.Context())
	if err != nil {
		slog.Error("[Handler] Failed to list reviews", slog.String("error", err.Error()))
		RespondError(w, MapHTTPStatus(err), "Failed to load reviews", "")
		return
	}
	RespondJSON(w, http.StatusOK, processing.CalculateMetrics(reviews))
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{Status: "running", Timestamp: h.now().UTC()}
	if h.deps.Checks != nil {
		resp.Checks = h.deps.Checks()
	}
	RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.deps.Settings.Settings(r.Context())
	if err != nil {
		RespondError(w, MapHTTPStatus(err), "Failed to load settings", err.Error())
		return
	}
	RespondJSON(w, http.StatusOK, settings)
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.StoreSettings
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)).Decode(&settings); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	saved, err := h.deps.Settings.SaveSettings(r.Context(), settings)
	if err != nil {
		RespondError(w, MapHTTPStatus(err), "Failed to save settings", err.Error())
		return
	}
	RespondJSON(w, http.StatusOK, saved)
}

func (h *Handler) PutAPIKey(w http.ResponseWriter, r *http.Request) {
	var req models.APIKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)).Decode(&req); err != nil {
		RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.deps.Settings.SetAPIKey(r.Context(), req.APIKey); err != nil {
		RespondError(w, MapHTTPStatus(err), "Failed to save API key", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Settings.ClearAPIKey(r.Context()); err != nil {
		RespondError(w, MapHTTPStatus(err), "Failed to clear API key", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req models.AnalyzeRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return "", false
	}
	if strings.TrimSpace(req.Text) == "" {
		RespondError(w, http.StatusBadRequest, "Text is required", "")
		return "", false
	}
	return req.Text, true
}
