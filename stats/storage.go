// Package stats keeps lightweight monthly usage counters, persisted as a
// JSON file so restarts don't lose them.
package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats holds the counters for one calendar month.
type MonthlyStats struct {
	AnalysesRun int       `json:"analyses_run"` // pages fetched and scored
	CacheHits   int       `json:"cache_hits"`   // requests served from a stored analysis
	Errors      int       `json:"errors"`       // failed fetches or parses
	ScoreBands  [4]int    `json:"score_bands"`  // excellent, good, average, poor
	LastUpdated time.Time `json:"last_updated"`
}

// Storage handles persistent storage of statistics.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
}

// NewStorage creates a statistics store backed by a file under dataDir.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	// Write to a temporary file, then rename into place.
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
		// Write already pending.
	}
}

func (s *Storage) bucket(month string) *MonthlyStats {
	m, exists := s.stats[month]
	if !exists {
		m = &MonthlyStats{}
		s.stats[month] = m
	}
	return m
}

// TrackAnalysis records a completed analysis and its score band.
func (s *Storage) TrackAnalysis(score int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.AnalysesRun++
	m.ScoreBands[bandIndex(score)]++
	m.LastUpdated = time.Now()

	s.maybeWrite()
}

// TrackCacheHit records a request served from a stored analysis.
func (s *Storage) TrackCacheHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.CacheHits++
	m.LastUpdated = time.Now()

	s.maybeWrite()
}

// TrackError records a failed fetch or parse.
func (s *Storage) TrackError() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	m := s.bucket(currentMonth())
	m.Errors++
	m.LastUpdated = time.Now()

	s.maybeWrite()
}

// must hold s.mutex
func (s *Storage) maybeWrite() {
	if time.Since(s.lastWrite) > time.Minute {
		s.requestWrite()
		s.lastWrite = time.Now()
	}
}

func bandIndex(score int) int {
	switch {
	case score >= 90:
		return 0
	case score >= 70:
		return 1
	case score >= 50:
		return 2
	default:
		return 3
	}
}

// GetCurrentStats returns counters for the current month.
func (s *Storage) GetCurrentStats() MonthlyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[currentMonth()]; exists {
		return *m
	}
	return MonthlyStats{}
}

// GetMonthlyStats returns counters for a specific "YYYY-MM" month.
func (s *Storage) GetMonthlyStats(yearMonth string) (MonthlyStats, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if m, exists := s.stats[yearMonth]; exists {
		return *m, true
	}
	return MonthlyStats{}, false
}

// GetAllMonths returns all months with data, newest first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return months
}

// Cleanup keeps only the current and previous month.
func (s *Storage) Cleanup() {
	now := time.Now()
	current := now.Format("2006-01")
	previous := now.AddDate(0, -1, 0).Format("2006-01")

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.stats {
		if key != current && key != previous {
			delete(s.stats, key)
		}
	}
	s.requestWrite()

	log.Printf("Retained statistics for months: %s, %s", current, previous)
}
