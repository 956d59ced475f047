package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/model"
)

type DripperRepository interface {
	AddDripper(ctx context.Context, dripper model.Dripper) (*model.Dripper, error)
	DeleteDripper(ctx context.Context, dripperID uint) error
	GetDripperByID(ctx context.Context, dripperID uint) (*model.Dripper, error)
	ListDrippers(ctx context.Context) ([]*model.Dripper, error)
	UpdateDripper(ctx context.Context, dripper *model.Dripper) (*model.Dripper, error)
}

type FilterRepository interface {
	AddFilter(ctx context.Context, filter model.Filter) (*model.Filter, error)
	DeleteFilter(ctx context.Context, filterID uint) error
	GetFilterByID(ctx context.Context, filterID uint) (*model.Filter, error)
	ListFilters(ctx context.Context) ([]*model.Filter, error)
	UpdateFilter(ctx context.Context, filter *model.Filter) (*model.Filter, error)
}

func (r *Repository) ListDrippers(ctx context.Context) ([]*model.Dripper, error) {
	var drippers []*model.Dripper

	if result := r.DB.WithContext(ctx).Order("name ASC, id ASC").Find(&drippers); result.Error != nil {
		return nil, result.Error
	}

	return drippers, nil
}

func (r *Repository) GetDripperByID(ctx context.Context, dripperID uint) (*model.Dripper, error) {
	var dripper model.Dripper

	if result := r.DB.WithContext(ctx).First(&dripper, dripperID); result.Error != nil {
		return nil, result.Error
	}

	return &dripper, nil
}

func (r *Repository) AddDripper(ctx context.Context, dripper model.Dripper) (*model.Dripper, error) {
	if result := r.DB.WithContext(ctx).Create(&dripper); result.Error != nil {
		return nil, result.Error
	}

	return &dripper, nil
}

func (r *Repository) UpdateDripper(ctx context.Context, dripper *model.Dripper) (*model.Dripper, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.Dripper{}, dripper.ID); err != nil {
			return err
		}

		return tx.Save(dripper).Error
	})
	if err != nil {
		return nil, err
	}

	return dripper, nil
}

func (r *Repository) DeleteDripper(ctx context.Context, dripperID uint) error {
	return deleteEquipment(r.DB.WithContext(ctx), &model.Dripper{}, "dripper_id", dripperID)
}

func (r *Repository) ListFilters(ctx context.Context) ([]*model.Filter, error) {
	var filters []*model.Filter

	if result := r.DB.WithContext(ctx).Order("name ASC, id ASC").Find(&filters); result.Error != nil {
		return nil, result.Error
	}

	return filters, nil
}

func (r *Repository) GetFilterByID(ctx context.Context, filterID uint) (*model.Filter, error) {
	var filter model.Filter

	if result := r.DB.WithContext(ctx).First(&filter, filterID); result.Error != nil {
		return nil, result.Error
	}

	return &filter, nil
}

func (r *Repository) AddFilter(ctx context.Context, filter model.Filter) (*model.Filter, error) {
	if result := r.DB.WithContext(ctx).Create(&filter); result.Error != nil {
		return nil, result.Error
	}

	return &filter, nil
}

func (r *Repository) UpdateFilter(ctx context.Context, filter *model.Filter) (*model.Filter, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.Filter{}, filter.ID); err != nil {
			return err
		}

		return tx.Save(filter).Error
	})
	if err != nil {
		return nil, err
	}

	return filter, nil
}

func (r *Repository) DeleteFilter(ctx context.Context, filterID uint) error {
	return deleteEquipment(r.DB.WithContext(ctx), &model.Filter{}, "filter_id", filterID)
}

// deleteEquipment clears the reference on tastings brewed with the item
// before removing it.
func deleteEquipment(db *gorm.DB, value any, column string, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, value, id); err != nil {
			return err
		}

		if err := tx.Model(&model.TastingEntry{}).Where(column+" = ?", id).Update(column, nil).Error; err != nil {
			return err
		}

		return tx.Delete(value, id).Error
	})
}
