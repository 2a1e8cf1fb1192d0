// backend/src/services/analysis_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/finsight/backend/src/analytics"
	"github.com/username/finsight/backend/src/extractor"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/normalizer"
	"github.com/username/finsight/backend/src/sample"
)

const (
	ckSnapshot             = "snapshot_%s_%s" // sessionID, period
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

// session holds one analysis session. Transactions are replaced wholesale on
// every import; the engine never merges statements across imports.
type session struct {
	profile      models.UserProfile
	transactions []models.Transaction
	dataSource   models.DataSource
	lastAccess   time.Time
}

type analysisServiceImpl struct {
	mu            sync.RWMutex
	sessions      map[string]*session
	extractor     Extractor
	snapshotCache *cache.Cache
	sessionTTL    time.Duration
	now           func() time.Time
}

// NewAnalysisService builds the session-owning pipeline orchestrator. The
// extractor may be nil when no API key is configured; every import then uses
// the sample dataset. Sessions idle longer than ttl are evicted; ttl <= 0
// disables eviction.
func NewAnalysisService(ext Extractor, snapshotCache *cache.Cache, ttl time.Duration) AnalysisService {
	s := &analysisServiceImpl{
		sessions:      make(map[string]*session),
		extractor:     ext,
		snapshotCache: snapshotCache,
		sessionTTL:    ttl,
		now:           time.Now,
	}
	if ttl > 0 {
		go s.evictLoop()
	}
	return s
}

func (s *analysisServiceImpl) evictLoop() {
	ticker := time.NewTicker(CacheCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := s.now().Add(-s.sessionTTL)
		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.lastAccess.Before(cutoff) {
				delete(s.sessions, id)
				s.invalidateSnapshots(id)
				logger.L.Info("idle session evicted", "sessionID", id)
			}
		}
		s.mu.Unlock()
	}
}

func (s *analysisServiceImpl) CreateSession(profile models.UserProfile) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{profile: profile, lastAccess: s.now()}
	s.mu.Unlock()
	logger.L.Info("session created", "sessionID", id, "country", profile.Country)
	return id
}

func (s *analysisServiceImpl) UpdateProfile(sessionID string, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	sess.profile = profile
	sess.lastAccess = s.now()
	s.invalidateSnapshots(sessionID)
	return nil
}

// touch refreshes the session's idle timer.
func (s *analysisServiceImpl) touch(sessionID string) {
	s.mu.Lock()
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastAccess = s.now()
	}
	s.mu.Unlock()
}

func (s *analysisServiceImpl) Profile(sessionID string) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return models.UserProfile{}, ErrSessionNotFound
	}
	return sess.profile, nil
}

func (s *analysisServiceImpl) ProcessStatements(ctx context.Context, sessionID string, files []StatementFile) (*models.AnalysisResult, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	profile := sess.profile

	records, err := s.extractAll(ctx, files, profile)
	source := models.SourceExtracted
	var txs []models.Transaction
	if err != nil || len(records) == 0 {
		logger.L.Warn("extraction failed, falling back to sample data", "sessionID", sessionID, "error", err)
		txs = sample.Transactions(s.now())
		source = models.SourceSample
		logger.L.Info("sample dataset substituted", "sessionID", sessionID, "detail", sample.Describe(txs))
	} else {
		txs = normalizer.Normalize(records)
	}

	s.mu.Lock()
	sess.transactions = txs
	sess.dataSource = source
	sess.lastAccess = s.now()
	s.invalidateSnapshots(sessionID)
	s.mu.Unlock()

	logger.L.Info("statements processed",
		"sessionID", sessionID,
		"files", len(files),
		"transactions", len(txs),
		"dataSource", source)

	return &models.AnalysisResult{Transactions: txs, DataSource: source}, nil
}

// extractAll runs text extraction and the model call per file and merges the
// resulting records. A single unreadable file fails the whole import so the
// sample fallback stays all-or-nothing.
func (s *analysisServiceImpl) extractAll(ctx context.Context, files []StatementFile, profile models.UserProfile) ([]models.RawRecord, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("%w: no extractor configured", ErrExtractionFailed)
	}
	var records []models.RawRecord
	for _, file := range files {
		text, err := statementText(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrExtractionFailed, file.Filename, err)
		}
		recs, err := s.extractor.ExtractTransactions(ctx, text, profile)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func statementText(file StatementFile) (string, error) {
	switch file.Kind {
	case "pdf":
		return extractor.PDFText(file.Reader, file.Size)
	case "csv":
		return extractor.CSVText(io.NewSectionReader(file.Reader, 0, file.Size))
	default:
		return "", fmt.Errorf("unsupported statement kind %q", file.Kind)
	}
}

func (s *analysisServiceImpl) Snapshot(sessionID string, period string) (*models.AnalyticsSnapshot, error) {
	if period == "" {
		period = analytics.PeriodAll
	}
	s.touch(sessionID)
	cacheKey := fmt.Sprintf(ckSnapshot, sessionID, period)
	if cached, found := s.snapshotCache.Get(cacheKey); found {
		return cached.(*models.AnalyticsSnapshot), nil
	}

	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrSessionNotFound
	}
	txs := sess.transactions
	profile := sess.profile
	s.mu.RUnlock()

	snap := analytics.ComputeSnapshot(txs, profile, period)
	s.snapshotCache.Set(cacheKey, &snap, cache.DefaultExpiration)
	return &snap, nil
}

func (s *analysisServiceImpl) Months(sessionID string) ([]string, error) {
	s.touch(sessionID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return analytics.MonthsInOrder(sess.transactions), nil
}

// invalidateSnapshots drops every cached period for the session. Caller holds
// the write lock.
func (s *analysisServiceImpl) invalidateSnapshots(sessionID string) {
	prefix := fmt.Sprintf(ckSnapshot, sessionID, "")
	for key := range s.snapshotCache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.snapshotCache.Delete(key)
		}
	}
}
