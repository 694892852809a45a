package exchange

import (
	"context"
	"errors"

	"collection-tracker/feature/collection/models"

	"gorm.io/gorm"
)

// GormSource reads the snapshot from the relational store. All listings are
// ordered by id so a fixed dataset always scans the same way.
type GormSource struct {
	db *gorm.DB
}

// NewGormSource creates a Source backed by the given connection.
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (s *GormSource) UsersByID(ctx context.Context, ids []int) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	return users, err
}

func (s *GormSource) Sets(ctx context.Context) ([]models.Set, error) {
	var sets []models.Set
	err := s.db.WithContext(ctx).Order("id ASC").Find(&sets).Error
	return sets, err
}

func (s *GormSource) SetByID(ctx context.Context, id int) (*models.Set, error) {
	var set models.Set
	err := s.db.WithContext(ctx).First(&set, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *GormSource) SetTypes(ctx context.Context) ([]models.SetType, error) {
	var setTypes []models.SetType
	err := s.db.WithContext(ctx).Order("id ASC").Find(&setTypes).Error
	return setTypes, err
}

func (s *GormSource) Memberships(ctx context.Context) ([]models.Membership, error) {
	var memberships []models.Membership
	err := s.db.WithContext(ctx).Order("id ASC").Find(&memberships).Error
	return memberships, err
}

func (s *GormSource) MembershipsForSet(ctx context.Context, setID, setTypeID, categoryID int) ([]models.Membership, error) {
	var memberships []models.Membership
	err := s.db.WithContext(ctx).
		Where("set_id = ? AND set_type_id = ? AND category_id = ?", setID, setTypeID, categoryID).
		Order("id ASC").
		Find(&memberships).Error
	return memberships, err
}

func (s *GormSource) Items(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

func (s *GormSource) ItemsForSet(ctx context.Context, setID int, userIDs []int) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).
		Where("set_id = ? AND user_id IN ?", setID, userIDs).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
