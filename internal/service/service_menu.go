package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/store"
	"github.com/matu-sky/qrcode1/models"
)

// menuService is the concrete implementation of MenuService. It applies the
// domain rules — prune before persist, reject empty documents, owner-scoped
// mutations — and delegates storage to a MenuRepository.
type menuService struct {
	menuRepository store.MenuRepository
	logger         *logger.Logger
}

// NewMenuService constructs a MenuService wired to the given repository.
func NewMenuService(menuRepository store.MenuRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		logger:         logger,
	}
}

// CreateMenu prunes and persists a new menu document for ownerID.
//
// Returns the stored record (whose ID goes into the display link) or:
//   - ErrMenuNotEncodable if the pruned document has no shop name or no
//     surviving category.
//   - A wrapped storage error if the repository call fails.
func (s *menuService) CreateMenu(ctx context.Context, ownerID int64, document models.MenuDocument) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	pruned := document.Prune()
	if !pruned.Encodable() {
		log.Error().Str("shopName", pruned.ShopName).Msg("menu document not encodable")
		return models.MenuRecord{}, ErrMenuNotEncodable
	}

	record, err := s.menuRepository.CreateMenu(ctx, ownerID, pruned)
	if err != nil {
		log.Err(err).Msg("menu creation ended with error")
		return models.MenuRecord{}, fmt.Errorf("menu creation ended with error: %w", err)
	}

	return record, nil
}

// UpdateMenu prunes and stores a replacement document for an existing record.
// The record keeps its ID, so links already printed on QR codes stay valid.
//
// Returns the updated record or:
//   - ErrInvalidMenuID if recordID is not a UUID.
//   - ErrMenuNotEncodable if the pruned document is empty.
//   - store.ErrMenuNotFound / store.ErrNotMenuOwner passed through wrapped.
func (s *menuService) UpdateMenu(ctx context.Context, ownerID int64, recordID string, document models.MenuDocument) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(recordID); err != nil {
		return models.MenuRecord{}, ErrInvalidMenuID
	}

	pruned := document.Prune()
	if !pruned.Encodable() {
		log.Error().Str("id", recordID).Msg("menu document not encodable")
		return models.MenuRecord{}, ErrMenuNotEncodable
	}

	record, err := s.menuRepository.UpdateMenu(ctx, ownerID, recordID, pruned)
	if err != nil {
		log.Err(err).Str("id", recordID).Msg("menu update ended with error")
		return models.MenuRecord{}, fmt.Errorf("menu update ended with error: %w", err)
	}

	return record, nil
}

// GetMenu fetches a record by its UUID. It is not owner-scoped: the display
// page resolves records for anonymous visitors.
func (s *menuService) GetMenu(ctx context.Context, recordID string) (models.MenuRecord, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(recordID); err != nil {
		return models.MenuRecord{}, ErrInvalidMenuID
	}

	record, err := s.menuRepository.GetMenuByID(ctx, recordID)
	if err != nil {
		log.Err(err).Str("id", recordID).Msg("menu lookup ended with error")
		return models.MenuRecord{}, fmt.Errorf("menu lookup ended with error: %w", err)
	}

	return record, nil
}

// ListMenus returns summaries of every record owned by ownerID, most
// recently updated first.
func (s *menuService) ListMenus(ctx context.Context, ownerID int64) ([]models.MenuSummary, error) {
	log := logger.FromContext(ctx)

	summaries, err := s.menuRepository.ListMenusByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerID", ownerID).Msg("menu listing ended with error")
		return nil, fmt.Errorf("menu listing ended with error: %w", err)
	}

	return summaries, nil
}

// DeleteMenu removes a record owned by ownerID. Links embedding the deleted
// ID keep resolving to the display page but render its not-found message.
func (s *menuService) DeleteMenu(ctx context.Context, ownerID int64, recordID string) error {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(recordID); err != nil {
		return ErrInvalidMenuID
	}

	if err := s.menuRepository.DeleteMenu(ctx, ownerID, recordID); err != nil {
		log.Err(err).Str("id", recordID).Msg("menu deletion ended with error")
		return fmt.Errorf("menu deletion ended with error: %w", err)
	}

	return nil
}
