package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/validation"
)

type OriginRepository interface {
	AddOrigin(ctx context.Context, origin model.OriginMaster) (*model.OriginMaster, error)
	DeleteOrigin(ctx context.Context, originID uint) error
	GetOriginByID(ctx context.Context, originID uint) (*model.OriginMaster, error)
	ListOrigins(ctx context.Context) ([]*model.OriginMaster, error)
	UpdateOrigin(ctx context.Context, origin *model.OriginMaster) (*model.OriginMaster, error)
}

func (r *Repository) ListOrigins(ctx context.Context) ([]*model.OriginMaster, error) {
	var origins []*model.OriginMaster

	if result := r.DB.WithContext(ctx).Order("name ASC").Find(&origins); result.Error != nil {
		return nil, result.Error
	}

	return origins, nil
}

func (r *Repository) GetOriginByID(ctx context.Context, originID uint) (*model.OriginMaster, error) {
	var origin model.OriginMaster

	if result := r.DB.WithContext(ctx).First(&origin, originID); result.Error != nil {
		return nil, result.Error
	}

	return &origin, nil
}

func (r *Repository) AddOrigin(ctx context.Context, origin model.OriginMaster) (*model.OriginMaster, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOriginNameFree(tx, origin.Name, 0); err != nil {
			return err
		}

		return tx.Create(&origin).Error
	})
	if err != nil {
		return nil, duplicateOrigin(err, origin.Name)
	}

	return &origin, nil
}

func (r *Repository) UpdateOrigin(ctx context.Context, origin *model.OriginMaster) (*model.OriginMaster, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.OriginMaster{}, origin.ID); err != nil {
			return err
		}

		if err := checkOriginNameFree(tx, origin.Name, origin.ID); err != nil {
			return err
		}

		return tx.Save(origin).Error
	})
	if err != nil {
		return nil, duplicateOrigin(err, origin.Name)
	}

	return origin, nil
}

// DeleteOrigin detaches bean masters from the origin before removing it.
func (r *Repository) DeleteOrigin(ctx context.Context, originID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.OriginMaster{}, originID); err != nil {
			return err
		}

		err := tx.Model(&model.BeanMaster{}).Where("origin_id = ?", originID).Update("origin_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&model.OriginMaster{}, originID).Error
	})
}

func checkOriginNameFree(tx *gorm.DB, name string, exceptID uint) error {
	var count int64

	query := tx.Model(&model.OriginMaster{}).Where("name = ?", name)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}

	if err := query.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return validation.DuplicateName("産地", name)
	}

	return nil
}

// duplicateOrigin maps a unique index violation that slipped past the
// name check onto the same error the check reports.
func duplicateOrigin(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return validation.DuplicateName("産地", name)
	}

	return err
}
