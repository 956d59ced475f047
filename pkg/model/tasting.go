package model

import (
	"time"

	"gorm.io/datatypes"
)

type TastingEntry struct {
	Base
	CoffeeBeanID     uint `gorm:"not null;index"`
	DripperID        *uint
	FilterID         *uint
	GrindSize        *float64
	BrewDate         time.Time `gorm:"not null"`
	Acidity          *int
	Bitterness       *int
	Sweetness        *int
	Body             *string
	Aftertaste       *int
	OverallRating    *int
	FlavorTags       datatypes.JSONSlice[string]
	WaterTemperature *int
	DoseGrams        *float64
	WaterGrams       *float64
	BrewTimeSeconds  *int
	Notes            *string
	ImagePath        *string

	CoffeeBean   CoffeeBean    `gorm:"foreignKey:CoffeeBeanID"`
	Dripper      *Dripper      `gorm:"foreignKey:DripperID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Filter       *Filter       `gorm:"foreignKey:FilterID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	TastingNotes []TastingNote `gorm:"foreignKey:TastingEntryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type TastingNote struct {
	Base
	TastingEntryID uint   `gorm:"not null;index"`
	TasterName     string `gorm:"not null"`
	Acidity        *int
	Bitterness     *int
	Sweetness      *int
	Body           *string
	Aftertaste     *int
	OverallRating  *int
	FlavorTags     datatypes.JSONSlice[string]
	Notes          *string
}
