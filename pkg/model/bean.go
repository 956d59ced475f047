package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusInStock  = "IN_STOCK"
	StatusFinished = "FINISHED"
)

type Base struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CoffeeBean struct {
	Base
	Name            string `gorm:"not null"`
	Origin          *string
	RoastLevel      *string
	Process         *string
	BeanType        *string
	IsDecaf         bool   `gorm:"not null;default:false"`
	AcidityScore    int    `gorm:"not null;default:0"`
	BitternessScore int    `gorm:"not null;default:0"`
	BodyScore       int    `gorm:"not null;default:0"`
	FlavorScore     int    `gorm:"not null;default:0"`
	Status          string `gorm:"not null;default:IN_STOCK;index"`
	FinishedDate    *time.Time
	PurchaseDate    *time.Time
	Price           decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	Amount          *int
	ShopID          *uint `gorm:"index"`
	BeanMasterID    *uint `gorm:"index"`
	ImagePath       *string
	Notes           *string

	Shop           *Shop          `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	BeanMaster     *BeanMaster    `gorm:"foreignKey:BeanMasterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TastingEntries []TastingEntry `gorm:"foreignKey:CoffeeBeanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// MarkStatus applies a status transition keeping FinishedDate in step with it.
func (b *CoffeeBean) MarkStatus(status string, now time.Time) {
	switch status {
	case StatusFinished:
		if b.Status != StatusFinished || b.FinishedDate == nil {
			b.FinishedDate = &now
		}
	default:
		b.FinishedDate = nil
	}

	b.Status = status
}

type BeanMaster struct {
	Base
	Name       string `gorm:"not null"`
	OriginID   *uint  `gorm:"index"`
	RoastLevel *string
	Process    *string
	Notes      *string

	Origin      *OriginMaster `gorm:"foreignKey:OriginID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CoffeeBeans []CoffeeBean  `gorm:"foreignKey:BeanMasterID"`
}

type OriginMaster struct {
	Base
	Name   string `gorm:"not null;uniqueIndex"`
	Region *string
}
