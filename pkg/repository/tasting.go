package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/validation"
)

const notInStockMessage = "在庫中のコーヒー豆のみテイスティングを記録できます"

type TastingFilter struct {
	CoffeeBeanID *uint
	DripperID    *uint
	FilterID     *uint
}

type TastingRepository interface {
	AddTasting(ctx context.Context, tasting model.TastingEntry) (*model.TastingEntry, error)
	DeleteTasting(ctx context.Context, tastingID uint) error
	GetTastingByID(ctx context.Context, tastingID uint) (*model.TastingEntry, error)
	ListTastings(ctx context.Context, filter TastingFilter) ([]*model.TastingEntry, error)
	UpdateTasting(ctx context.Context, tasting *model.TastingEntry) (*model.TastingEntry, error)
}

func withTastingDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CoffeeBean").
		Preload("CoffeeBean.Shop").
		Preload("Dripper").
		Preload("Filter").
		Preload("TastingNotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})
}

func (r *Repository) ListTastings(ctx context.Context, filter TastingFilter) ([]*model.TastingEntry, error) {
	var tastings []*model.TastingEntry

	query := withTastingDetails(r.DB.WithContext(ctx))

	if filter.CoffeeBeanID != nil {
		query = query.Where("coffee_bean_id = ?", *filter.CoffeeBeanID)
	}

	if filter.DripperID != nil {
		query = query.Where("dripper_id = ?", *filter.DripperID)
	}

	if filter.FilterID != nil {
		query = query.Where("filter_id = ?", *filter.FilterID)
	}

	if result := query.Order("brew_date DESC, id DESC").Find(&tastings); result.Error != nil {
		r.Logger.Error("error listing tastings", zap.Error(result.Error))

		return nil, result.Error
	}

	return tastings, nil
}

func (r *Repository) GetTastingByID(ctx context.Context, tastingID uint) (*model.TastingEntry, error) {
	var tasting model.TastingEntry

	if result := withTastingDetails(r.DB.WithContext(ctx)).First(&tasting, tastingID); result.Error != nil {
		return nil, result.Error
	}

	return &tasting, nil
}

// AddTasting records a brew of a bean that is still in stock.
func (r *Repository) AddTasting(ctx context.Context, tasting model.TastingEntry) (*model.TastingEntry, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockStockedBean(tx, tasting.CoffeeBeanID); err != nil {
			return err
		}

		if err := checkEquipmentReferences(tx, &tasting); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&tasting).Error
	})
	if err != nil {
		return nil, err
	}

	return &tasting, nil
}

// UpdateTasting only insists on an in-stock bean when the tasting moves to
// another bean, so tastings of a finished bean stay editable.
func (r *Repository) UpdateTasting(ctx context.Context, tasting *model.TastingEntry) (*model.TastingEntry, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.TastingEntry

		if err := tx.Select("id", "coffee_bean_id").Take(&current, tasting.ID).Error; err != nil {
			return err
		}

		if current.CoffeeBeanID != tasting.CoffeeBeanID {
			if err := lockStockedBean(tx, tasting.CoffeeBeanID); err != nil {
				return err
			}
		}

		if err := checkEquipmentReferences(tx, tasting); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(tasting).Error
	})
	if err != nil {
		return nil, err
	}

	return tasting, nil
}

func (r *Repository) DeleteTasting(ctx context.Context, tastingID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.TastingEntry{}, tastingID); err != nil {
			return err
		}

		if err := tx.Where("tasting_entry_id = ?", tastingID).Delete(&model.TastingNote{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.TastingEntry{}, tastingID).Error
	})
}

func lockStockedBean(tx *gorm.DB, beanID uint) error {
	var bean model.CoffeeBean

	if err := lockReference(tx, &bean, &beanID, "coffeeBeanId", "コーヒー豆"); err != nil {
		return err
	}

	if bean.Status != model.StatusInStock {
		return validation.InvalidState("coffeeBeanId", notInStockMessage)
	}

	return nil
}

func checkEquipmentReferences(tx *gorm.DB, tasting *model.TastingEntry) error {
	if err := lockReference(tx, &model.Dripper{}, tasting.DripperID, "dripperId", "ドリッパー"); err != nil {
		return err
	}

	return lockReference(tx, &model.Filter{}, tasting.FilterID, "filterId", "フィルター")
}
