package collection

import (
	"context"

	"collection-tracker/feature/collection/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BulkEntry is one item of a bulk add request.
type BulkEntry struct {
	Number      string `json:"number"`
	Duplicate   bool   `json:"duplicate"`
	Description string `json:"description"`
}

// Service handles inventory and set maintenance operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new collection service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ListSets returns every set.
func (s *Service) ListSets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	err := s.db.WithContext(ctx).Order("id ASC").Find(&sets).Error
	return sets, err
}

// ListSetTypes returns every set type.
func (s *Service) ListSetTypes(ctx context.Context) ([]models.SetType, error) {
	var setTypes []models.SetType
	err := s.db.WithContext(ctx).Order("id ASC").Find(&setTypes).Error
	return setTypes, err
}

// ListCategories returns every category.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

// Inventory returns a user's items for one set, ordered by id.
func (s *Service) Inventory(ctx context.Context, userID, setID int) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND set_id = ?", userID, setID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// CreateItem stores a new item and returns the refreshed inventory.
func (s *Service) CreateItem(ctx context.Context, item models.Item) ([]models.Item, error) {
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return s.Inventory(ctx, item.UserID, item.SetID)
}

// UpdateItem updates an item's status, duplicate flag and description, then
// returns the refreshed inventory.
func (s *Service) UpdateItem(ctx context.Context, id int, item models.Item) ([]models.Item, error) {
	updates := map[string]any{
		"status":      item.Status,
		"duplicate":   item.Duplicate,
		"description": item.Description,
	}
	if err := s.db.WithContext(ctx).Model(&models.Item{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Inventory(ctx, item.UserID, item.SetID)
}

// DeleteItem removes one item and returns the refreshed inventory.
func (s *Service) DeleteItem(ctx context.Context, id, userID, setID int) ([]models.Item, error) {
	if err := s.db.WithContext(ctx).Delete(&models.Item{}, id).Error; err != nil {
		return nil, err
	}
	return s.Inventory(ctx, userID, setID)
}

// DeleteItems removes several items by id and returns the refreshed inventory.
func (s *Service) DeleteItems(ctx context.Context, userID, setID int, ids []int) ([]models.Item, error) {
	if len(ids) > 0 {
		if err := s.db.WithContext(ctx).Delete(&models.Item{}, ids).Error; err != nil {
			return nil, err
		}
	}
	return s.Inventory(ctx, userID, setID)
}

// ClearInventory removes all of a user's items for one set.
func (s *Service) ClearInventory(ctx context.Context, userID, setID int) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND set_id = ?", userID, setID).
		Delete(&models.Item{}).Error
}

// AddAll bulk-adds entries to a user's inventory with a target status.
// Entries whose number already exists (string compare) get their status
// updated to the target; the rest are created.
func (s *Service) AddAll(ctx context.Context, userID, setID, status int, entries []BulkEntry) ([]models.Item, error) {
	existing, err := s.Inventory(ctx, userID, setID)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[string]models.Item, len(existing))
	for _, it := range existing {
		byNumber[it.Number] = it
	}

	for _, e := range entries {
		if current, ok := byNumber[e.Number]; ok {
			// Always update the status, even when unchanged.
			err = s.db.WithContext(ctx).
				Model(&models.Item{}).
				Where("id = ?", current.ID).
				Update("status", status).Error
		} else {
			dup := e.Duplicate
			err = s.db.WithContext(ctx).Create(&models.Item{
				Number:      e.Number,
				Status:      status,
				Duplicate:   &dup,
				Description: e.Description,
				SetID:       setID,
				UserID:      userID,
			}).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return s.Inventory(ctx, userID, setID)
}

// AddPreservingStatus bulk-adds entries without touching existing rows.
// Numbers already present are skipped; new ones are created as needed.
func (s *Service) AddPreservingStatus(ctx context.Context, userID, setID int, entries []BulkEntry) ([]models.Item, error) {
	existing, err := s.Inventory(ctx, userID, setID)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		present[it.Number] = struct{}{}
	}

	for _, e := range entries {
		if _, ok := present[e.Number]; ok {
			continue
		}
		dup := e.Duplicate
		if err := s.db.WithContext(ctx).Create(&models.Item{
			Number:      e.Number,
			Status:      models.StatusNeeded,
			Duplicate:   &dup,
			Description: e.Description,
			SetID:       setID,
			UserID:      userID,
		}).Error; err != nil {
			return nil, err
		}
	}
	return s.Inventory(ctx, userID, setID)
}

// JoinSet adds a set to a user's collection. The set's current classification
// is denormalized onto the membership row.
func (s *Service) JoinSet(ctx context.Context, userID, setID int) (*models.Membership, error) {
	var set models.Set
	if err := s.db.WithContext(ctx).First(&set, setID).Error; err != nil {
		return nil, err
	}
	m := models.Membership{
		UserID:     userID,
		SetID:      set.ID,
		SetTypeID:  set.SetTypeID,
		CategoryID: set.CategoryID,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// LeaveSet removes a set from a user's collection: the membership rows and
// the user's items for the set.
func (s *Service) LeaveSet(ctx context.Context, userID, setID int) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND set_id = ?", userID, setID).
		Delete(&models.Membership{}).Error; err != nil {
		return err
	}
	return s.ClearInventory(ctx, userID, setID)
}

// DeleteSet removes a set entirely: every user's items, every membership, and
// the set row itself.
func (s *Service) DeleteSet(ctx context.Context, setID int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("set_id = ?", setID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("set_id = ?", setID).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Set{}, setID).Error
	})
}

// RemoveDuplicates deletes every duplicate-flagged item of a set, for all
// users, and clears the set's extra numbers. Returns the number of deleted
// rows.
func (s *Service) RemoveDuplicates(ctx context.Context, setID int) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("set_id = ? AND duplicate = ?", setID, true).
		Delete(&models.Item{})
	if res.Error != nil {
		return 0, res.Error
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Set{}).
		Where("id = ?", setID).
		Update("extra_numbers", "").Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}
