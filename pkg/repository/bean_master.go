package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/validation"
)

type BeanMasterRepository interface {
	AddBeanMaster(ctx context.Context, master model.BeanMaster) (*model.BeanMaster, error)
	DeleteBeanMaster(ctx context.Context, masterID uint) error
	GetBeanMasterByID(ctx context.Context, masterID uint) (*model.BeanMaster, error)
	ListBeanMasters(ctx context.Context) ([]*model.BeanMaster, error)
	UpdateBeanMaster(ctx context.Context, master *model.BeanMaster) (*model.BeanMaster, error)
}

func purchasesOnly(db *gorm.DB) *gorm.DB {
	return db.Select("id", "bean_master_id", "name", "status", "purchase_date").Order("purchase_date DESC, id DESC")
}

func (r *Repository) ListBeanMasters(ctx context.Context) ([]*model.BeanMaster, error) {
	var masters []*model.BeanMaster

	result := r.DB.WithContext(ctx).
		Preload("Origin").
		Preload("CoffeeBeans", purchasesOnly).
		Order("name ASC").
		Find(&masters)
	if result.Error != nil {
		return nil, result.Error
	}

	return masters, nil
}

func (r *Repository) GetBeanMasterByID(ctx context.Context, masterID uint) (*model.BeanMaster, error) {
	var master model.BeanMaster

	result := r.DB.WithContext(ctx).
		Preload("Origin").
		Preload("CoffeeBeans", purchasesOnly).
		First(&master, masterID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &master, nil
}

func (r *Repository) AddBeanMaster(ctx context.Context, master model.BeanMaster) (*model.BeanMaster, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockReference(tx, &model.OriginMaster{}, master.OriginID, "originId", "産地"); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&master).Error
	})
	if err != nil {
		return nil, err
	}

	return &master, nil
}

func (r *Repository) UpdateBeanMaster(ctx context.Context, master *model.BeanMaster) (*model.BeanMaster, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.BeanMaster{}, master.ID); err != nil {
			return err
		}

		if err := lockReference(tx, &model.OriginMaster{}, master.OriginID, "originId", "産地"); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Save(master).Error
	})
	if err != nil {
		return nil, err
	}

	return master, nil
}

// DeleteBeanMaster refuses to remove a master while purchases still point at it.
func (r *Repository) DeleteBeanMaster(ctx context.Context, masterID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.BeanMaster{}, masterID); err != nil {
			return err
		}

		var purchases int64

		if err := tx.Model(&model.CoffeeBean{}).Where("bean_master_id = ?", masterID).Count(&purchases).Error; err != nil {
			return err
		}

		if purchases > 0 {
			return validation.HasDependents("銘柄マスタ", "コーヒー豆")
		}

		return tx.Delete(&model.BeanMaster{}, masterID).Error
	})
}
