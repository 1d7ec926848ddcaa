package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/matu-sky/qrcode1/models"
)

func TestLocalStateStorage_SessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewLocalStateStorage(path)
	if err != nil {
		t.Fatalf("failed to open local state: %v", err)
	}

	if _, err = s.Session(); !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}

	if err = s.SaveSession(42, "token-abc"); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	session, err := s.Session()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 42 || session.Token != "token-abc" {
		t.Errorf("unexpected session: %+v", session)
	}

	// a fresh instance must read the persisted state back from disk
	reopened, err := NewLocalStateStorage(path)
	if err != nil {
		t.Fatalf("failed to reopen local state: %v", err)
	}
	session, err = reopened.Session()
	if err != nil {
		t.Fatalf("unexpected error after reopen: %v", err)
	}
	if session.Token != "token-abc" {
		t.Errorf("expected persisted token, got %q", session.Token)
	}

	if err = reopened.ClearSession(); err != nil {
		t.Fatalf("failed to clear session: %v", err)
	}
	if _, err = reopened.Session(); !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound after clear, got %v", err)
	}
}

func TestLocalStateStorage_Drafts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewLocalStateStorage(path)
	if err != nil {
		t.Fatalf("failed to open local state: %v", err)
	}

	document := models.MenuDocument{
		ShopName: "카페 모모",
		Categories: []models.Category{
			{Name: "커피", Items: []models.MenuItem{{Name: "아메리카노", DineInPrice: "4,500원"}}},
		},
	}

	if err = s.SaveDraft("new-menu", document); err != nil {
		t.Fatalf("failed to save draft: %v", err)
	}

	got, ok := s.Draft("new-menu")
	if !ok {
		t.Fatal("expected draft to be present")
	}
	if got.ShopName != document.ShopName {
		t.Errorf("unexpected shop name: %q", got.ShopName)
	}

	reopened, err := NewLocalStateStorage(path)
	if err != nil {
		t.Fatalf("failed to reopen local state: %v", err)
	}
	if _, ok = reopened.Draft("new-menu"); !ok {
		t.Fatal("expected draft to survive reopen")
	}
	if len(reopened.Drafts()) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(reopened.Drafts()))
	}

	if err = reopened.DeleteDraft("new-menu"); err != nil {
		t.Fatalf("failed to delete draft: %v", err)
	}
	if _, ok = reopened.Draft("new-menu"); ok {
		t.Fatal("expected draft to be gone")
	}
}

func TestLocalStateStorage_InMemory(t *testing.T) {
	s, err := NewLocalStateStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory state: %v", err)
	}

	if err = s.SaveSession(1, "t"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = s.Session(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
