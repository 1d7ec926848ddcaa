package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/utils"
	"github.com/matu-sky/qrcode1/models"
)

func newTestMenuRepo(t *testing.T) (*menuRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &menuRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func testMenuDocument() models.MenuDocument {
	return models.MenuDocument{
		ShopName: "카페 모모",
		Categories: []models.Category{
			{
				Name: "커피",
				Items: []models.MenuItem{
					{Name: "아메리카노", DineInPrice: "4,500원", TakeoutPrice: "4,000원"},
				},
			},
		},
	}
}

func mustMarshal(t *testing.T, document models.MenuDocument) []byte {
	t.Helper()
	payload, err := json.Marshal(document)
	if err != nil {
		t.Fatalf("failed to marshal document: %v", err)
	}
	return payload
}

func TestCreateMenu_Success(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	document := testMenuDocument()
	payload := mustMarshal(t, document)
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow("3f1d2a6c-0000-4000-8000-000000000001", 42, payload, now, now)

	mock.ExpectQuery("INSERT INTO menus").
		WithArgs(sqlmock.AnyArg(), int64(42), payload).
		WillReturnRows(rows)

	record, err := repo.CreateMenu(ctx, 42, document)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID == "" {
		t.Error("expected a non-empty record id")
	}
	if record.OwnerID != 42 {
		t.Errorf("expected OwnerID=42, got %d", record.OwnerID)
	}
	if record.Document.ShopName != document.ShopName {
		t.Errorf("expected shop name %q, got %q", document.ShopName, record.Document.ShopName)
	}
}

func TestUpdateMenu_Success(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	document := testMenuDocument()
	payload := mustMarshal(t, document)
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow(recordID, 42, payload, now.Add(-time.Hour), now)

	mock.ExpectQuery("UPDATE menus").
		WithArgs(payload, recordID, int64(42)).
		WillReturnRows(rows)

	record, err := repo.UpdateMenu(ctx, 42, recordID, document)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != recordID {
		t.Errorf("expected id %s, got %s", recordID, record.ID)
	}
}

func TestUpdateMenu_NotFound(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	document := testMenuDocument()
	recordID := "3f1d2a6c-0000-4000-8000-00000000dead"

	mock.ExpectQuery("UPDATE menus").
		WithArgs(sqlmock.AnyArg(), recordID, int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}))

	mock.ExpectQuery("SELECT owner_id").
		WithArgs(recordID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateMenu(ctx, 42, recordID, document)
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}

func TestUpdateMenu_NotOwner(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	document := testMenuDocument()
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"

	mock.ExpectQuery("UPDATE menus").
		WithArgs(sqlmock.AnyArg(), recordID, int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}))

	mock.ExpectQuery("SELECT owner_id").
		WithArgs(recordID).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(99))

	_, err := repo.UpdateMenu(ctx, 42, recordID, document)
	if !errors.Is(err, ErrNotMenuOwner) {
		t.Fatalf("expected ErrNotMenuOwner, got %v", err)
	}
}

func TestGetMenuByID_Success(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	document := testMenuDocument()
	payload := mustMarshal(t, document)
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow(recordID, 42, payload, now, now)

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(recordID).
		WillReturnRows(rows)

	record, err := repo.GetMenuByID(ctx, recordID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Document.ShopName != "카페 모모" {
		t.Errorf("unexpected shop name: %q", record.Document.ShopName)
	}
	if len(record.Document.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(record.Document.Categories))
	}
}

func TestGetMenuByID_NotFound(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	recordID := "3f1d2a6c-0000-4000-8000-00000000dead"

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(recordID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMenuByID(ctx, recordID)
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}

func TestGetMenuByID_MalformedDocument(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow(recordID, 42, []byte("{not json"), now, now)

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(recordID).
		WillReturnRows(rows)

	_, err := repo.GetMenuByID(ctx, recordID)
	if !errors.Is(err, ErrDecodingDocument) {
		t.Fatalf("expected ErrDecodingDocument, got %v", err)
	}
}

func TestListMenusByOwner(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	first := mustMarshal(t, models.MenuDocument{ShopName: "카페 모모"})
	second := mustMarshal(t, models.MenuDocument{ShopName: "분식집"})

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow("3f1d2a6c-0000-4000-8000-000000000001", 42, first, now.Add(-2*time.Hour), now).
		AddRow("3f1d2a6c-0000-4000-8000-000000000002", 42, second, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	summaries, err := repo.ListMenusByOwner(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ShopName != "카페 모모" {
		t.Errorf("unexpected first shop name: %q", summaries[0].ShopName)
	}
	if summaries[1].ShopName != "분식집" {
		t.Errorf("unexpected second shop name: %q", summaries[1].ShopName)
	}
}

func TestListMenusByOwner_RowErrorReportsScanFailure(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}).
		AddRow("3f1d2a6c-0000-4000-8000-000000000001", 42, mustMarshal(t, models.MenuDocument{ShopName: "카페 모모"}), now, now).
		RowError(0, errors.New("driver: bad connection"))

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	_, err := repo.ListMenusByOwner(ctx, 42)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestListMenusByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, owner_id, data, created_at, updated_at").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "data", "created_at", "updated_at"}))

	summaries, err := repo.ListMenusByOwner(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(summaries))
	}
}

func TestDeleteMenu_Success(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"

	mock.ExpectExec("DELETE FROM menus").
		WithArgs(recordID, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteMenu(ctx, 42, recordID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteMenu_NotOwner(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	recordID := "3f1d2a6c-0000-4000-8000-000000000001"

	mock.ExpectExec("DELETE FROM menus").
		WithArgs(recordID, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT owner_id").
		WithArgs(recordID).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(99))

	err := repo.DeleteMenu(ctx, 42, recordID)
	if !errors.Is(err, ErrNotMenuOwner) {
		t.Fatalf("expected ErrNotMenuOwner, got %v", err)
	}
}

func TestDeleteMenu_NotFound(t *testing.T) {
	repo, mock, db := newTestMenuRepo(t)
	defer db.Close()

	ctx := context.Background()
	recordID := "3f1d2a6c-0000-4000-8000-00000000dead"

	mock.ExpectExec("DELETE FROM menus").
		WithArgs(recordID, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT owner_id").
		WithArgs(recordID).
		WillReturnError(sql.ErrNoRows)

	err := repo.DeleteMenu(ctx, 42, recordID)
	if !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}
