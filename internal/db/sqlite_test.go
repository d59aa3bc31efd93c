package db

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/insight-labs/repo-insight/internal/db/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named per test so parallel/earlier tests cannot leak rows in.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Analysis{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestUpsertUser_CreateThenUpdate(t *testing.T) {
	db := newTestDB(t)

	first, err := UpsertUser(db, &models.User{
		GitHubID:    12345,
		Username:    "octocat",
		Email:       "octo@example.com",
		AccessToken: "gho_first",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned local ID")
	}

	second, err := UpsertUser(db, &models.User{
		GitHubID:    12345,
		Username:    "octocat-renamed",
		AvatarURL:   "https://example.com/a.png",
		AccessToken: "gho_second",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected same local ID, got %d then %d", first.ID, second.ID)
	}
	if second.Username != "octocat-renamed" {
		t.Errorf("username not refreshed, got %q", second.Username)
	}
	if second.AccessToken != "gho_second" {
		t.Errorf("access token not refreshed, got %q", second.AccessToken)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("created_at must be immutable, got %v then %v", first.CreatedAt, second.CreatedAt)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one row per identity, got %d", count)
	}
}

func TestUpsertUser_DistinctIdentities(t *testing.T) {
	db := newTestDB(t)

	a, err := UpsertUser(db, &models.User{GitHubID: 1, Username: "a"})
	if err != nil {
		t.Fatalf("upsert a: %v", err)
	}
	b, err := UpsertUser(db, &models.User{GitHubID: 2, Username: "b"})
	if err != nil {
		t.Fatalf("upsert b: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("distinct identities must map to distinct rows, both got %d", a.ID)
	}
}

func TestUserByGitHubID_NotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := UserByGitHubID(db, 999); err != gorm.ErrRecordNotFound {
		t.Errorf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestHistory_OrderAndLimit(t *testing.T) {
	db := newTestDB(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		err := InsertAnalysis(db, &models.Analysis{
			RepositoryName: fmt.Sprintf("acme/repo-%d", i),
			Results:        "{}",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := History(db, nil, HistoryLimit)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != HistoryLimit {
		t.Fatalf("expected %d records, got %d", HistoryLimit, len(got))
	}
	if got[0].RepositoryName != "acme/repo-24" {
		t.Errorf("expected newest record first, got %s", got[0].RepositoryName)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("record %d is newer than record %d", i, i-1)
		}
	}
}

func TestHistory_OwnerOrAnonymousVisibility(t *testing.T) {
	db := newTestDB(t)

	alice, _ := UpsertUser(db, &models.User{GitHubID: 1, Username: "alice"})
	bob, _ := UpsertUser(db, &models.User{GitHubID: 2, Username: "bob"})

	mustInsert := func(userID *uint, name string) {
		t.Helper()
		if err := InsertAnalysis(db, &models.Analysis{UserID: userID, RepositoryName: name, Results: "{}"}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}
	mustInsert(&alice.ID, "alice/repo")
	mustInsert(&bob.ID, "bob/repo")
	mustInsert(nil, "anon/repo")

	got, err := History(db, &alice.ID, HistoryLimit)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected alice's and anonymous records only, got %d", len(got))
	}
	for _, a := range got {
		if a.RepositoryName == "bob/repo" {
			t.Error("bob's record must not be visible to alice")
		}
	}
}

func TestStatsForUser(t *testing.T) {
	db := newTestDB(t)

	user, _ := UpsertUser(db, &models.User{GitHubID: 7, Username: "stats"})
	now := time.Now()

	insertAt := func(ts time.Time) {
		t.Helper()
		if err := InsertAnalysis(db, &models.Analysis{UserID: &user.ID, RepositoryName: "acme/widgets", Results: "{}", CreatedAt: ts}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	insertAt(now.Add(-time.Hour))         // this week
	insertAt(now.AddDate(0, 0, -10))      // this month only
	insertAt(now.AddDate(0, 0, -40))      // older than both windows
	if err := InsertAnalysis(db, &models.Analysis{RepositoryName: "anon/repo", Results: "{}"}); err != nil {
		t.Fatalf("insert anon: %v", err)
	}

	stats, err := StatsForUser(db, user.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnalyses != 3 {
		t.Errorf("total = %d, want 3", stats.TotalAnalyses)
	}
	if stats.AnalysesThisWeek != 1 {
		t.Errorf("week = %d, want 1", stats.AnalysesThisWeek)
	}
	if stats.AnalysesThisMonth != 2 {
		t.Errorf("month = %d, want 2", stats.AnalysesThisMonth)
	}
}
