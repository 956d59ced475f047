package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/BrewLog/pkg/model"
)

type ShopRepository interface {
	AddShop(ctx context.Context, shop model.Shop) (*model.Shop, error)
	DeleteShop(ctx context.Context, shopID uint) error
	GetShopByID(ctx context.Context, shopID uint) (*model.Shop, error)
	ListShops(ctx context.Context) ([]*model.Shop, error)
	UpdateShop(ctx context.Context, shop *model.Shop) (*model.Shop, error)
}

func (r *Repository) ListShops(ctx context.Context) ([]*model.Shop, error) {
	var shops []*model.Shop

	if result := r.DB.WithContext(ctx).Order("brand_name ASC, name ASC, id ASC").Find(&shops); result.Error != nil {
		return nil, result.Error
	}

	return shops, nil
}

func (r *Repository) GetShopByID(ctx context.Context, shopID uint) (*model.Shop, error) {
	var shop model.Shop

	if result := r.DB.WithContext(ctx).First(&shop, shopID); result.Error != nil {
		return nil, result.Error
	}

	return &shop, nil
}

func (r *Repository) AddShop(ctx context.Context, shop model.Shop) (*model.Shop, error) {
	if result := r.DB.WithContext(ctx).Create(&shop); result.Error != nil {
		return nil, result.Error
	}

	return &shop, nil
}

func (r *Repository) UpdateShop(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.Shop{}, shop.ID); err != nil {
			return err
		}

		return tx.Save(shop).Error
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

// DeleteShop keeps the purchases made at the shop and clears their shop.
func (r *Repository) DeleteShop(ctx context.Context, shopID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &model.Shop{}, shopID); err != nil {
			return err
		}

		if err := tx.Model(&model.CoffeeBean{}).Where("shop_id = ?", shopID).Update("shop_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Shop{}, shopID).Error
	})
}
