package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/utils"
	"github.com/matu-sky/qrcode1/models"
)

// menuRepository is the PostgreSQL-backed implementation of [MenuRepository].
// Menu documents are stored whole in a jsonb column: the document is an
// editing unit that is always read and replaced in full, so a relational
// breakdown into category and item tables would only add join cost.
type menuRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewMenuRepository constructs a [MenuRepository] backed by the provided
// database connection and logger.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateMenu persists a new menu document under a freshly generated UUID and
// returns the stored record. The UUID is assigned here, not by the database,
// so the identifier embedded in display links never depends on the backend.
func (r *menuRepository) CreateMenu(ctx context.Context, ownerID int64, document models.MenuDocument) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(document)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateMenu").Msg("error: marshalling menu document")
		return models.MenuRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	recordID := r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createMenu, recordID, ownerID, payload)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateMenu").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.MenuRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return scanMenuRecord(row)
}

// UpdateMenu replaces the stored document of an existing record. The UPDATE
// is scoped to both the record id and the owner id; when it affects no rows
// a follow-up ownership probe distinguishes [ErrMenuNotFound] from
// [ErrNotMenuOwner].
func (r *menuRepository) UpdateMenu(ctx context.Context, ownerID int64, recordID string, document models.MenuDocument) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(document)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.UpdateMenu").Msg("error: marshalling menu document")
		return models.MenuRecord{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	row := r.db.QueryRowContext(ctx, updateMenu, payload, recordID, ownerID)
	if err = row.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*menuRepository.UpdateMenu").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.MenuRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	record, err := scanMenuRecord(row)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.MenuRecord{}, err
	}

	// zero rows updated: either the record does not exist at all, or it
	// belongs to someone else
	var dbOwner int64
	probeErr := r.db.QueryRowContext(ctx, getMenuOwner, recordID).Scan(&dbOwner)
	switch {
	case errors.Is(probeErr, sql.ErrNoRows):
		return models.MenuRecord{}, ErrMenuNotFound
	case probeErr != nil:
		log.Err(probeErr).Str("func", "*menuRepository.UpdateMenu").Msg("error: ownership probe failed")
		return models.MenuRecord{}, fmt.Errorf("unexpected DB error: %w", probeErr)
	default:
		return models.MenuRecord{}, ErrNotMenuOwner
	}
}

// GetMenuByID fetches a record by its UUID. Lookups are deliberately not
// owner-scoped: every generated menu link must stay resolvable by anonymous
// visitors of the display page.
func (r *menuRepository) GetMenuByID(ctx context.Context, recordID string) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getMenuByID, recordID)
	if err := row.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*menuRepository.GetMenuByID").Bool("retryable", r.db.retryable(err)).Msg("error: row is nil")
		return models.MenuRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	record, err := scanMenuRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MenuRecord{}, ErrMenuNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.GetMenuByID").Msg("error: scanning error")
		return models.MenuRecord{}, err
	}

	return record, nil
}

// ListMenusByOwner returns list-page projections of every record owned by
// the given user, most recently updated first.
func (r *menuRepository) ListMenusByOwner(ctx context.Context, ownerID int64) ([]models.MenuSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMenusByOwner, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenusByOwner").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.MenuSummary, 0)
	for rows.Next() {
		var (
			summary models.MenuSummary
			owner   int64
			payload []byte
		)
		if err = rows.Scan(&summary.ID, &owner, &payload, &summary.CreatedAt, &summary.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*menuRepository.ListMenusByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var document models.MenuDocument
		if err = json.Unmarshal(payload, &document); err != nil {
			log.Err(err).Str("func", "*menuRepository.ListMenusByOwner").Msg("error: unmarshalling menu document")
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		summary.ShopName = document.ShopName

		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenusByOwner").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

// DeleteMenu removes a record owned by the given user. Like [UpdateMenu],
// an ineffective delete is resolved into [ErrMenuNotFound] or
// [ErrNotMenuOwner] via an ownership probe.
func (r *menuRepository) DeleteMenu(ctx context.Context, ownerID int64, recordID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMenu, recordID, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.DeleteMenu").Msg("error: executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.DeleteMenu").Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	var dbOwner int64
	probeErr := r.db.QueryRowContext(ctx, getMenuOwner, recordID).Scan(&dbOwner)
	switch {
	case errors.Is(probeErr, sql.ErrNoRows):
		return ErrMenuNotFound
	case probeErr != nil:
		log.Err(probeErr).Str("func", "*menuRepository.DeleteMenu").Msg("error: ownership probe failed")
		return fmt.Errorf("unexpected DB error: %w", probeErr)
	default:
		return ErrNotMenuOwner
	}
}

// scanMenuRecord scans one menus row (id, owner_id, data, created_at,
// updated_at) into a [models.MenuRecord], decoding the jsonb document.
func scanMenuRecord(row *sql.Row) (models.MenuRecord, error) {
	var (
		record  models.MenuRecord
		payload []byte
	)
	if err := row.Scan(&record.ID, &record.OwnerID, &payload, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return models.MenuRecord{}, err
	}
	if err := json.Unmarshal(payload, &record.Document); err != nil {
		return models.MenuRecord{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return record, nil
}
