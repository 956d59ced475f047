package model

type Dripper struct {
	Base
	Name         string `gorm:"not null"`
	Manufacturer *string
	Size         *string
	ImagePath    *string
	Notes        *string
}

type Filter struct {
	Base
	Name      string `gorm:"not null"`
	Type      *string
	Size      *string
	ImagePath *string
	Notes     *string
}
