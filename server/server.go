// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagepulse/backend/config"
	"github.com/pagepulse/backend/middleware"
	"github.com/pagepulse/backend/seo"
	"github.com/pagepulse/backend/stats"
	"github.com/pagepulse/backend/store"
)

// PageFetcher fetches a page and turns it into signals for scoring.
type PageFetcher interface {
	Extract(ctx context.Context, pageURL, keyword string) (*seo.PageSignals, error)
}

// Server wires the HTTP API to the extractor, engine and storage.
type Server struct {
	cfg     *config.Config
	fetcher PageFetcher
	store   *store.Store
	stats   *stats.Storage
	limiter *middleware.RateLimiter
	timeNow func() time.Time
}

// New builds a Server. timeNow defaults to time.Now.
func New(cfg *config.Config, fetcher PageFetcher, st *store.Store, usage *stats.Storage) *Server {
	return &Server{
		cfg:     cfg,
		fetcher: fetcher,
		store:   st,
		stats:   usage,
		limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		timeNow: time.Now,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()

	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())
	r.Use(s.limiter.RateLimit())

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/analyze", s.analyze)
		api.GET("/analyses", s.listAnalyses)
		api.GET("/analysis", s.getAnalysis)
		api.DELETE("/analysis", s.deleteAnalysis)
		api.GET("/statistics", s.statistics)
	}

	return r
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	log.Printf("Server starting on http://localhost:%s", s.cfg.Port)
	return s.Router().Run(":" + s.cfg.Port)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type analyzeRequest struct {
	URL     string `json:"url" binding:"required"`
	Keyword string `json:"keyword"`
	Force   bool   `json:"force"`
}

type analyzeResponse struct {
	store.StoredAnalysis
	Cached bool `json:"cached"`
}

// analyze scores a page. A stored result younger than the configured max
// age is returned as-is unless force is set.
func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pageURL, err := store.NormalizeURL(req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}

	now := s.timeNow()

	if !req.Force {
		existing, err := s.store.GetByURL(c.Request.Context(), pageURL)
		if err == nil && now.Sub(existing.AnalyzedAt) < s.cfg.ReanalysisMaxAge {
			s.stats.TrackCacheHit()
			c.JSON(http.StatusOK, analyzeResponse{StoredAnalysis: *existing, Cached: true})
			return
		}
	}

	saved, err := s.RunAnalysis(c.Request.Context(), pageURL, req.Keyword, now)
	if err != nil {
		s.stats.TrackError()
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, analyzeResponse{StoredAnalysis: *saved, Cached: false})
}

// RunAnalysis fetches, scores and persists one page. The scheduler uses
// it directly for background re-analysis.
func (s *Server) RunAnalysis(ctx context.Context, pageURL, keyword string, now time.Time) (*store.StoredAnalysis, error) {
	signals, err := s.fetcher.Extract(ctx, pageURL, keyword)
	if err != nil {
		return nil, err
	}

	result := seo.Analyze(*signals, now)

	saved := store.StoredAnalysis{
		URL:               pageURL,
		Keyword:           keyword,
		HealthScore:       result.HealthScore,
		Grade:             result.Grade,
		ThinContent:       result.ThinContent,
		HasCriticalErrors: result.HasCriticalErrors,
		Recommendations:   result.Recommendations,
		AnalyzedAt:        now,
	}
	if err := s.store.Save(ctx, saved); err != nil {
		return nil, err
	}
	s.stats.TrackAnalysis(result.HealthScore)

	return &saved, nil
}

// listAnalyses returns recent analyses, optionally narrowed by a search
// query (?q=) or a score band (?score=excellent|good|average|poor).
func (s *Server) listAnalyses(c *gin.Context) {
	ctx := c.Request.Context()

	if band := c.Query("score"); band != "" {
		results, err := s.store.FilterByScore(ctx, band)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"analyses": orEmpty(results)})
		return
	}

	if q := c.Query("q"); q != "" {
		results, err := s.store.Search(ctx, q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"analyses": orEmpty(results)})
		return
	}

	limit := 50
	results, err := s.store.Recent(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Listing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": orEmpty(results)})
}

func (s *Server) getAnalysis(c *gin.Context) {
	pageURL, err := store.NormalizeURL(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}

	a, err := s.store.GetByURL(c.Request.Context(), pageURL)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis for this URL"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lookup failed"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) deleteAnalysis(c *gin.Context) {
	pageURL, err := store.NormalizeURL(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL provided"})
		return
	}

	err = s.store.Delete(c.Request.Context(), pageURL)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis for this URL"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": pageURL})
}

func (s *Server) statistics(c *gin.Context) {
	summary, err := s.store.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Statistics unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"month":   s.stats.GetCurrentStats(),
	})
}

func orEmpty(in []store.StoredAnalysis) []store.StoredAnalysis {
	if in == nil {
		return []store.StoredAnalysis{}
	}
	return in
}
