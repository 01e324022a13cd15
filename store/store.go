// Package store persists analysis results in sqlite, keyed by normalized
// URL. The engine itself stays stateless; history, search and the staleness
// queries all live here.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pagepulse/backend/seo"
)

// ErrNotFound is returned when no analysis exists for a URL.
var ErrNotFound = errors.New("analysis not found")

// StoredAnalysis is one persisted analysis run.
type StoredAnalysis struct {
	URL               string               `json:"url"`
	Keyword           string               `json:"keyword,omitempty"`
	HealthScore       int                  `json:"healthScore"`
	Grade             seo.Grade            `json:"grade"`
	ThinContent       bool                 `json:"thinContent"`
	HasCriticalErrors bool                 `json:"hasCriticalErrors"`
	Recommendations   []seo.Recommendation `json:"recommendations"`
	AnalyzedAt        time.Time            `json:"analyzedAt"`
}

// Summary aggregates the stored analyses for the dashboard.
type Summary struct {
	TotalAnalyses int     `json:"totalAnalyses"`
	AverageScore  float64 `json:"averageScore"`
	CriticalCount int     `json:"criticalCount"` // score < 30
	GoodCount     int     `json:"goodCount"`     // score >= 80
}

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		url TEXT PRIMARY KEY,
		keyword TEXT NOT NULL DEFAULT '',
		health_score INTEGER NOT NULL,
		grade TEXT NOT NULL,
		thin_content INTEGER NOT NULL,
		has_critical_errors INTEGER NOT NULL,
		recommendations TEXT NOT NULL,
		analyzed_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);
	CREATE INDEX IF NOT EXISTS idx_analyses_score ON analyses(health_score);`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NormalizeURL canonicalizes a URL for use as a storage key: https scheme
// defaulted, lowercased, trailing slash trimmed.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty url")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}
	if u.Host == "" {
		return "", errors.New("invalid url: missing host")
	}
	return strings.TrimSuffix(strings.ToLower(raw), "/"), nil
}

// Save upserts an analysis.
func (s *Store) Save(ctx context.Context, a StoredAnalysis) error {
	recs, err := json.Marshal(a.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			keyword = excluded.keyword,
			health_score = excluded.health_score,
			grade = excluded.grade,
			thin_content = excluded.thin_content,
			has_critical_errors = excluded.has_critical_errors,
			recommendations = excluded.recommendations,
			analyzed_at = excluded.analyzed_at`,
		a.URL, a.Keyword, a.HealthScore, string(a.Grade), a.ThinContent, a.HasCriticalErrors, string(recs), a.AnalyzedAt.UTC())
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// GetByURL returns the stored analysis for a normalized URL.
func (s *Store) GetByURL(ctx context.Context, pageURL string) (*StoredAnalysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at
		FROM analyses WHERE url = ?`, pageURL)
	return scanAnalysis(row)
}

// Recent returns the n most recently analyzed pages.
func (s *Store) Recent(ctx context.Context, n int) ([]StoredAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at
		FROM analyses ORDER BY analyzed_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// Search returns analyses whose URL or keyword contains the query.
func (s *Store) Search(ctx context.Context, query string) ([]StoredAnalysis, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at
		FROM analyses
		WHERE url LIKE ? OR keyword LIKE ?
		ORDER BY analyzed_at DESC`, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("search analyses: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// Score bands for FilterByScore.
const (
	BandExcellent = "excellent" // >= 90
	BandGood      = "good"      // 70-89
	BandAverage   = "average"   // 50-69
	BandPoor      = "poor"      // < 50
)

// FilterByScore returns analyses inside a named score band.
func (s *Store) FilterByScore(ctx context.Context, band string) ([]StoredAnalysis, error) {
	var low, high int
	switch band {
	case BandExcellent:
		low, high = 90, 100
	case BandGood:
		low, high = 70, 89
	case BandAverage:
		low, high = 50, 69
	case BandPoor:
		low, high = 0, 49
	default:
		return nil, fmt.Errorf("unknown score band %q", band)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at
		FROM analyses
		WHERE health_score BETWEEN ? AND ?
		ORDER BY analyzed_at DESC`, low, high)
	if err != nil {
		return nil, fmt.Errorf("filter analyses: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// StaleURLs returns URL/keyword pairs last analyzed before now-maxAge,
// oldest first. The scheduler re-analyzes them.
func (s *Store) StaleURLs(ctx context.Context, maxAge time.Duration, now time.Time) ([]StoredAnalysis, error) {
	cutoff := now.Add(-maxAge).UTC()
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, keyword, health_score, grade, thin_content, has_critical_errors, recommendations, analyzed_at
		FROM analyses
		WHERE analyzed_at < ?
		ORDER BY analyzed_at ASC`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query stale: %w", err)
	}
	defer rows.Close()
	return scanAnalyses(rows)
}

// Delete removes the analysis for a URL.
func (s *Store) Delete(ctx context.Context, pageURL string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE url = ?`, pageURL)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSummary aggregates counts and the average score over all analyses.
func (s *Store) GetSummary(ctx context.Context) (Summary, error) {
	var sum Summary
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       AVG(health_score),
		       COALESCE(SUM(CASE WHEN health_score < 30 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN health_score >= 80 THEN 1 ELSE 0 END), 0)
		FROM analyses`).Scan(&sum.TotalAnalyses, &avg, &sum.CriticalCount, &sum.GoodCount)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	if avg.Valid {
		sum.AverageScore = avg.Float64
	}
	return sum, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*StoredAnalysis, error) {
	var a StoredAnalysis
	var grade, recs string
	err := row.Scan(&a.URL, &a.Keyword, &a.HealthScore, &grade, &a.ThinContent, &a.HasCriticalErrors, &recs, &a.AnalyzedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan analysis: %w", err)
	}
	a.Grade = seo.Grade(grade)
	if err := json.Unmarshal([]byte(recs), &a.Recommendations); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return &a, nil
}

func scanAnalyses(rows *sql.Rows) ([]StoredAnalysis, error) {
	var out []StoredAnalysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}
