package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eakarpinar/go-translation-backend/internal/domain"
	"github.com/eakarpinar/go-translation-backend/internal/provider"
	"github.com/eakarpinar/go-translation-backend/internal/repo"
)

var dbSeq int64

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedUser inserts an active user and returns it.
func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u, err := repo.CreateUser(context.Background(), db, email, "x", "", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// --- fakes for the translation pipeline ---

// fakeQuota is a scriptable QuotaGate recording calls.
type fakeQuota struct {
	admit bool
	count int64
	err   error
	calls int
}

func (f *fakeQuota) Allow(_ context.Context, _ string, _ int64) (bool, int64, error) {
	f.calls++
	if f.err != nil {
		return false, 0, f.err
	}
	if f.admit {
		f.count++
	}
	return f.admit, f.count, nil
}

func (f *fakeQuota) Usage(context.Context, string) (int64, error) {
	return f.count, f.err
}

// fakeCache is an in-memory ResultCache keyed by source text.
type fakeCache struct {
	entries   map[string]provider.Result
	lookupErr error
	storeErr  error
	stores    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]provider.Result{}}
}

func (f *fakeCache) Lookup(_ context.Context, req provider.Request) (provider.Result, bool, error) {
	if f.lookupErr != nil {
		return provider.Result{}, false, f.lookupErr
	}
	res, ok := f.entries[req.Text]
	return res, ok, nil
}

func (f *fakeCache) Store(_ context.Context, req provider.Request, res provider.Result) error {
	f.stores++
	if f.storeErr != nil {
		return f.storeErr
	}
	f.entries[req.Text] = res
	return nil
}

// fakeTranslator is a scriptable provider.Translator.
type fakeTranslator struct {
	result         provider.Result
	err            error
	calls          int
	compliance     provider.ComplianceResult
	complianceErr  error
	complianceArgs []map[string]any
}

func (f *fakeTranslator) Translate(_ context.Context, req provider.Request) (provider.Result, error) {
	f.calls++
	if f.err != nil {
		return provider.Result{}, f.err
	}
	res := f.result
	res.SourceLang = req.SourceLang
	res.TargetLang = req.TargetLang
	res.ContextApplied = len(req.Context) > 0
	return res, nil
}

func (f *fakeTranslator) ValidateCompliance(_ context.Context, _, _ string, rules map[string]any) (provider.ComplianceResult, error) {
	f.complianceArgs = append(f.complianceArgs, rules)
	if f.complianceErr != nil {
		return provider.ComplianceResult{}, f.complianceErr
	}
	return f.compliance, nil
}

// inlineTasks runs submitted tasks synchronously so tests can assert on their
// side effects without sleeping.
type inlineTasks struct {
	names []string
}

func (f *inlineTasks) Go(name string, fn func(ctx context.Context) error) {
	f.names = append(f.names, name)
	_ = fn(context.Background())
}
