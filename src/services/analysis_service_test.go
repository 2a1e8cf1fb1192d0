package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/username/finsight/backend/src/logger"
	"github.com/username/finsight/backend/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

type stubExtractor struct {
	records []models.RawRecord
	err     error
}

func (s *stubExtractor) ExtractTransactions(_ context.Context, _ string, _ models.UserProfile) ([]models.RawRecord, error) {
	return s.records, s.err
}

func newTestService(ext Extractor) AnalysisService {
	return NewAnalysisService(ext, cache.New(DefaultCacheExpiration, CacheCleanupInterval), 0)
}

func csvFile(t *testing.T) StatementFile {
	t.Helper()
	data := []byte("Date,Description,Amount\n2025-01-05,MERCADO,82.40\n")
	return StatementFile{
		Filename: "statement.csv",
		Kind:     "csv",
		Reader:   bytes.NewReader(data),
		Size:     int64(len(data)),
	}
}

func TestProcessStatementsExtracted(t *testing.T) {
	ext := &stubExtractor{records: []models.RawRecord{
		{Date: "2025-01-05", Description: "MERCADO CENTRAL", Amount: 82.40, Category: "Supermarket"},
		{Date: "2025-01-06", Description: "RAPPI", Amount: 22.40, Category: "Delivery"},
	}}
	svc := newTestService(ext)
	id := svc.CreateSession(models.UserProfile{MonthlyIncome: 3000})

	result, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DataSource != models.SourceExtracted {
		t.Errorf("data source: got %s, want extracted", result.DataSource)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("got %d transactions, want 2", len(result.Transactions))
	}
}

func TestProcessStatementsFallsBackToSample(t *testing.T) {
	ext := &stubExtractor{err: errors.New("model unavailable")}
	svc := newTestService(ext)
	id := svc.CreateSession(models.UserProfile{})

	result, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)})
	if err != nil {
		t.Fatalf("fallback should not surface the extraction error: %v", err)
	}
	if result.DataSource != models.SourceSample {
		t.Errorf("data source: got %s, want sample", result.DataSource)
	}
	if len(result.Transactions) == 0 {
		t.Error("sample fallback produced no transactions")
	}

	snap, err := svc.Snapshot(id, "")
	if err != nil {
		t.Fatalf("snapshot after fallback: %v", err)
	}
	if snap.TotalSpent <= 0 {
		t.Errorf("sample snapshot total spent = %v, want > 0", snap.TotalSpent)
	}
	if len(snap.CategoryTotals) == 0 {
		t.Error("sample snapshot has no category totals")
	}
}

func TestProcessStatementsNilExtractorUsesSample(t *testing.T) {
	svc := newTestService(nil)
	id := svc.CreateSession(models.UserProfile{})
	result, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DataSource != models.SourceSample {
		t.Errorf("data source: got %s, want sample", result.DataSource)
	}
}

func TestProcessStatementsReplacesWholesale(t *testing.T) {
	ext := &stubExtractor{records: []models.RawRecord{
		{Date: "2025-01-05", Description: "FIRST IMPORT", Amount: 10.0},
	}}
	svc := newTestService(ext)
	id := svc.CreateSession(models.UserProfile{})

	if _, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)}); err != nil {
		t.Fatal(err)
	}

	ext.records = []models.RawRecord{
		{Date: "2025-02-01", Description: "SECOND IMPORT", Amount: 20.0},
	}
	result, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Description != "SECOND IMPORT" {
		t.Errorf("second import should replace the first: %+v", result.Transactions)
	}
}

func TestSnapshotCachedUntilInvalidated(t *testing.T) {
	ext := &stubExtractor{records: []models.RawRecord{
		{Date: "2025-01-05", Description: "STORE", Amount: 100.0, Category: "Supermarket"},
	}}
	svc := newTestService(ext)
	id := svc.CreateSession(models.UserProfile{MonthlyIncome: 2000})
	if _, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)}); err != nil {
		t.Fatal(err)
	}

	first, err := svc.Snapshot(id, "all")
	if err != nil {
		t.Fatal(err)
	}
	again, err := svc.Snapshot(id, "all")
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Error("second read should hit the cache and return the same pointer")
	}

	// Profile update invalidates.
	if err := svc.UpdateProfile(id, models.UserProfile{MonthlyIncome: 5000}); err != nil {
		t.Fatal(err)
	}
	fresh, err := svc.Snapshot(id, "all")
	if err != nil {
		t.Fatal(err)
	}
	if fresh == first {
		t.Error("profile update should drop the cached snapshot")
	}
	if fresh.SavingsRate.NetIncome != 5000 {
		t.Errorf("fresh snapshot uses stale profile: %+v", fresh.SavingsRate)
	}
}

func TestSessionNotFound(t *testing.T) {
	svc := newTestService(nil)
	if _, err := svc.Snapshot("missing", "all"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Snapshot: got %v", err)
	}
	if _, err := svc.Months("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Months: got %v", err)
	}
	if err := svc.UpdateProfile("missing", models.UserProfile{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("UpdateProfile: got %v", err)
	}
	if _, err := svc.ProcessStatements(context.Background(), "missing", nil); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("ProcessStatements: got %v", err)
	}
}

func TestMonths(t *testing.T) {
	ext := &stubExtractor{records: []models.RawRecord{
		{Date: "2025-02-05", Description: "B", Amount: 10.0},
		{Date: "2025-01-05", Description: "A", Amount: 10.0},
	}}
	svc := newTestService(ext)
	id := svc.CreateSession(models.UserProfile{})
	if _, err := svc.ProcessStatements(context.Background(), id, []StatementFile{csvFile(t)}); err != nil {
		t.Fatal(err)
	}
	months, err := svc.Months(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(months) != 2 || months[0] != "Jan" || months[1] != "Feb" {
		t.Errorf("got %v, want [Jan Feb]", months)
	}
}
