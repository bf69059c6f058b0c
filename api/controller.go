package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contentiq/logging"
	"contentiq/pipeline"
	"contentiq/types"
)

// Controller binds pipeline operations to HTTP handlers.
type Controller struct {
	orch   *pipeline.Orchestrator
	logger *slog.Logger
}

// RegisterOperationRoutes mounts the six pipeline operations under /v1.
func RegisterOperationRoutes(r *gin.Engine, ctrl *Controller) {
	v1 := r.Group("/v1")
	v1.POST("/extract", ctrl.handleExtract)
	v1.POST("/seo", ctrl.handleSEO)
	v1.POST("/summarize", ctrl.handleSummarize)
	v1.POST("/sentiment", ctrl.handleSentiment)
	v1.POST("/analyze", ctrl.handleAnalyze)
	v1.POST("/compare", ctrl.handleCompare)
}

type extractRequest struct {
	URL           string `json:"url"`
	IncludeImages bool   `json:"include_images"`
	IncludeLinks  bool   `json:"include_links"`
	OutputFormat  string `json:"output_format"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type summarizeRequest struct {
	URL       string `json:"url"`
	Text      string `json:"text"`
	Format    string `json:"format"`
	MaxLength int    `json:"max_length"`
	Language  string `json:"language"`
}

type sentimentRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type analyzeRequest struct {
	URL              string `json:"url"`
	SummaryFormat    string `json:"summary_format"`
	SummaryMaxLength int    `json:"summary_max_length"`
}

type compareRequest struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
}

func (ctrl *Controller) handleExtract(c *gin.Context) {
	var req extractRequest
	if !bindJSON(c, &req) {
		return
	}
	doc, cached, err := ctrl.orch.Extract(c.Request.Context(), pipeline.ExtractRequest{
		URL:           req.URL,
		IncludeImages: req.IncludeImages,
		IncludeLinks:  req.IncludeLinks,
		OutputFormat:  req.OutputFormat,
	})
	ctrl.respond(c, "extract", req.URL, doc, cached, err)
}

func (ctrl *Controller) handleSEO(c *gin.Context) {
	var req urlRequest
	if !bindJSON(c, &req) {
		return
	}
	data, cached, err := ctrl.orch.SEO(c.Request.Context(), req.URL)
	ctrl.respond(c, "seo", req.URL, data, cached, err)
}

func (ctrl *Controller) handleSummarize(c *gin.Context) {
	var req summarizeRequest
	if !bindJSON(c, &req) {
		return
	}
	data, cached, err := ctrl.orch.Summarize(c.Request.Context(), pipeline.SummarizeRequest{
		URL:       req.URL,
		Text:      req.Text,
		Format:    types.SummaryFormat(req.Format),
		MaxLength: req.MaxLength,
		Language:  req.Language,
	})
	ctrl.respond(c, "summarize", req.URL, data, cached, err)
}

func (ctrl *Controller) handleSentiment(c *gin.Context) {
	var req sentimentRequest
	if !bindJSON(c, &req) {
		return
	}
	data, cached, err := ctrl.orch.Sentiment(c.Request.Context(), pipeline.SentimentRequest{
		URL:  req.URL,
		Text: req.Text,
	})
	ctrl.respond(c, "sentiment", req.URL, data, cached, err)
}

func (ctrl *Controller) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if !bindJSON(c, &req) {
		return
	}
	data, cached, err := ctrl.orch.Analyze(c.Request.Context(), pipeline.AnalyzeRequest{
		URL:              req.URL,
		SummaryFormat:    types.SummaryFormat(req.SummaryFormat),
		SummaryMaxLength: req.SummaryMaxLength,
	})
	ctrl.respond(c, "analyze", req.URL, data, cached, err)
}

func (ctrl *Controller) handleCompare(c *gin.Context) {
	var req compareRequest
	if !bindJSON(c, &req) {
		return
	}
	data, cached, err := ctrl.orch.Compare(c.Request.Context(), pipeline.CompareRequest{
		URL1: req.URL1,
		URL2: req.URL2,
	})
	ctrl.respond(c, "compare", req.URL1, data, cached, err)
}

func bindJSON(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: types.ErrorDetail{
				Code:    types.KindMissingInput,
				Message: "request body must be valid JSON",
			},
			Timestamp: time.Now().UTC(),
		})
		return false
	}
	return true
}

func (ctrl *Controller) respond(c *gin.Context, op, target string, data any, cached bool, err error) {
	if err != nil {
		ctrl.fail(c, op, target, err)
		return
	}
	ctrl.logger.Info("request served", "op", op, "target", logging.SanitizeURL(target), "cached", cached)
	c.JSON(http.StatusOK, types.Response{
		Success:   true,
		Data:      data,
		Cached:    cached,
		Timestamp: time.Now().UTC(),
	})
}

func (ctrl *Controller) fail(c *gin.Context, op, target string, err error) {
	kind := types.KindInternal
	message := "internal error"
	var reqErr *types.RequestError
	if errors.As(err, &reqErr) {
		kind = reqErr.Kind
		message = reqErr.Message
	}
	ctrl.logger.Warn("request failed", "op", op, "target", logging.SanitizeURL(target), "code", kind, "error", err)
	c.JSON(statusFor(kind), types.ErrorResponse{
		Error: types.ErrorDetail{
			Code:    kind,
			Message: message,
		},
		Timestamp: time.Now().UTC(),
	})
}

// statusFor maps error kinds to HTTP status codes.
func statusFor(kind types.Kind) int {
	switch kind {
	case types.KindMissingInput, types.KindInvalidTarget:
		return http.StatusBadRequest
	case types.KindNoContent, types.KindInvalidContent, types.KindUnextractable:
		return http.StatusUnprocessableEntity
	case types.KindFetchTooLarge:
		return http.StatusRequestEntityTooLarge
	case types.KindFetchHTTPError, types.KindTooManyRedirects, types.KindAIError:
		return http.StatusBadGateway
	case types.KindFetchTimeout, types.KindAITimeout:
		return http.StatusGatewayTimeout
	case types.KindAIRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
