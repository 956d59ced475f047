package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BrewLog/pkg/model"
)

type BeanFilter struct {
	Status       *string
	ShopID       *uint
	BeanMasterID *uint
}

type BeanRepository interface {
	AddBean(ctx context.Context, bean model.CoffeeBean) (*model.CoffeeBean, error)
	DeleteBean(ctx context.Context, beanID uint) error
	GetBeanByID(ctx context.Context, beanID uint) (*model.CoffeeBean, error)
	ListBeans(ctx context.Context, filter BeanFilter) ([]*model.CoffeeBean, error)
	UpdateBean(ctx context.Context, bean *model.CoffeeBean) (*model.CoffeeBean, error)
	UpdateBeanStatus(ctx context.Context, beanID uint, status string, now time.Time) (*model.CoffeeBean, error)
}

func (r *Repository) ListBeans(ctx context.Context, filter BeanFilter) ([]*model.CoffeeBean, error) {
	var beans []*model.CoffeeBean

	query := r.DB.WithContext(ctx).
		Preload("Shop").
		Preload("BeanMaster").
		Preload("BeanMaster.Origin")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}

	if filter.BeanMasterID != nil {
		query = query.Where("bean_master_id = ?", *filter.BeanMasterID)
	}

	if result := query.Order("created_at DESC, id DESC").Find(&beans); result.Error != nil {
		r.Logger.Error("error listing coffee beans", zap.Error(result.Error))

		return nil, result.Error
	}

	return beans, nil
}

func (r *Repository) GetBeanByID(ctx context.Context, beanID uint) (*model.CoffeeBean, error) {
	var bean model.CoffeeBean

	result := r.DB.WithContext(ctx).
		Preload("Shop").
		Preload("BeanMaster").
		Preload("BeanMaster.Origin").
		First(&bean, beanID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &bean, nil
}

func (r *Repository) AddBean(ctx context.Context, bean model.CoffeeBean) (*model.CoffeeBean, error) {
	if bean.Status == "" {
		bean.Status = model.StatusInStock
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkBeanReferences(tx, &bean); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&bean).Error
	})
	if err != nil {
		return nil, err
	}

	return &bean, nil
}

func (r *Repository) UpdateBean(ctx context.Context, bean *model.CoffeeBean) (*model.CoffeeBean, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.CoffeeBean{}, bean.ID); err != nil {
			return err
		}

		if err := checkBeanReferences(tx, bean); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(bean).Error
	})
	if err != nil {
		return nil, err
	}

	return bean, nil
}

func (r *Repository) UpdateBeanStatus(ctx context.Context, beanID uint, status string, now time.Time) (*model.CoffeeBean, error) {
	var bean model.CoffeeBean

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&bean, beanID).Error; err != nil {
			return err
		}

		bean.MarkStatus(status, now)

		return tx.Model(&bean).Select("status", "finished_date", "updated_at").Updates(&bean).Error
	})
	if err != nil {
		return nil, err
	}

	return &bean, nil
}

func (r *Repository) DeleteBean(ctx context.Context, beanID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.CoffeeBean{}, beanID); err != nil {
			return err
		}

		tastings := tx.Model(&model.TastingEntry{}).Select("id").Where("coffee_bean_id = ?", beanID)

		if err := tx.Where("tasting_entry_id IN (?)", tastings).Delete(&model.TastingNote{}).Error; err != nil {
			return err
		}

		if err := tx.Where("coffee_bean_id = ?", beanID).Delete(&model.TastingEntry{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.CoffeeBean{}, beanID).Error
	})
}

func checkBeanReferences(tx *gorm.DB, bean *model.CoffeeBean) error {
	if err := lockReference(tx, &model.Shop{}, bean.ShopID, "shopId", "ショップ"); err != nil {
		return err
	}

	return lockReference(tx, &model.BeanMaster{}, bean.BeanMasterID, "beanMasterId", "銘柄マスタ")
}
