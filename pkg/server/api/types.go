package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// BeanFields are the coffee bean fields shared by create and update.
// Absent fields leave the stored value alone on update.
type BeanFields struct {
	Origin          *string          `json:"origin"`
	RoastLevel      *string          `json:"roastLevel"      binding:"omitempty,domain=roastLevel"`
	Process         *string          `json:"process"         binding:"omitempty,domain=process"`
	BeanType        *string          `json:"beanType"        binding:"omitempty,domain=beanType"`
	IsDecaf         *bool            `json:"isDecaf"`
	AcidityScore    *float64         `json:"acidityScore"    binding:"omitempty,range=score"`
	BitternessScore *float64         `json:"bitternessScore" binding:"omitempty,range=score"`
	BodyScore       *float64         `json:"bodyScore"       binding:"omitempty,range=score"`
	FlavorScore     *float64         `json:"flavorScore"     binding:"omitempty,range=score"`
	PurchaseDate    *Date            `json:"purchaseDate"`
	Price           *decimal.Decimal `json:"price"`
	Amount          *int             `json:"amount"          binding:"omitempty,range=positive"`
	ShopID          *uint            `json:"shopId"`
	BeanMasterID    *uint            `json:"beanMasterId"`
	ImagePath       *string          `json:"imagePath"`
	Notes           *string          `json:"notes"`
}

type CreateBeanRequest struct {
	Name   string  `json:"name"   binding:"notblank"`
	Status *string `json:"status" binding:"omitempty,domain=status"`
	BeanFields
}

type UpdateBeanRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
	BeanFields
}

type UpdateBeanStatusRequest struct {
	Status string `json:"status" binding:"required,domain=status"`
}

type LookupBeanRequest struct {
	URL string `json:"url" binding:"notblank"`
}

type BeanMasterRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BeanResponse struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Origin          *string          `json:"origin"`
	RoastLevel      *string          `json:"roastLevel"`
	Process         *string          `json:"process"`
	BeanType        *string          `json:"beanType"`
	IsDecaf         bool             `json:"isDecaf"`
	AcidityScore    int              `json:"acidityScore"`
	BitternessScore int              `json:"bitternessScore"`
	BodyScore       int              `json:"bodyScore"`
	FlavorScore     int              `json:"flavorScore"`
	Status          string           `json:"status"`
	FinishedDate    *time.Time       `json:"finishedDate"`
	PurchaseDate    *time.Time       `json:"purchaseDate"`
	Price           *decimal.Decimal `json:"price"`
	Amount          *int             `json:"amount"`
	ShopID          *uint            `json:"shopId"`
	Shop            *ShopResponse    `json:"shop,omitempty"`
	BeanMasterID    *uint            `json:"beanMasterId"`
	BeanMaster      *BeanMasterRef   `json:"beanMaster,omitempty"`
	ImagePath       *string          `json:"imagePath"`
	Notes           *string          `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type BeanDraftResponse struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Price       *decimal.Decimal `json:"price"`
	ShopName    string           `json:"shopName"`
	SourceURL   string           `json:"sourceUrl"`
	Source      string           `json:"source"`
}

type BeanMasterFields struct {
	OriginID   *uint   `json:"originId"`
	RoastLevel *string `json:"roastLevel" binding:"omitempty,domain=roastLevel"`
	Process    *string `json:"process"    binding:"omitempty,domain=process"`
	Notes      *string `json:"notes"`
}

type CreateBeanMasterRequest struct {
	Name string `json:"name" binding:"notblank"`
	BeanMasterFields
}

type UpdateBeanMasterRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
	BeanMasterFields
}

type BeanMasterResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	OriginID      *uint           `json:"originId"`
	Origin        *OriginResponse `json:"origin,omitempty"`
	RoastLevel    *string         `json:"roastLevel"`
	Process       *string         `json:"process"`
	Notes         *string         `json:"notes"`
	PurchaseCount int             `json:"purchaseCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateOriginRequest struct {
	Name   string  `json:"name"   binding:"notblank"`
	Region *string `json:"region"`
}

type UpdateOriginRequest struct {
	Name   *string `json:"name"   binding:"omitempty,notblank"`
	Region *string `json:"region"`
}

type OriginResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Region    *string   `json:"region"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ShopFields struct {
	Address *string `json:"address"`
	URL     *string `json:"url"`
	Notes   *string `json:"notes"`
}

// CreateShopRequest needs a brand name or a branch name; see RegisterValidations.
type CreateShopRequest struct {
	BrandName *string `json:"brandName"`
	Name      *string `json:"name"`
	ShopFields
}

type UpdateShopRequest struct {
	BrandName *string `json:"brandName"`
	Name      *string `json:"name"`
	ShopFields
}

type ShopResponse struct {
	ID          uint      `json:"id"`
	BrandName   *string   `json:"brandName"`
	Name        *string   `json:"name"`
	DisplayName string    `json:"displayName"`
	Address     *string   `json:"address"`
	URL         *string   `json:"url"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DripperFields struct {
	Manufacturer *string `json:"manufacturer"`
	Size         *string `json:"size"      binding:"omitempty,domain=equipmentSize"`
	ImagePath    *string `json:"imagePath"`
	Notes        *string `json:"notes"`
}

type CreateDripperRequest struct {
	Name string `json:"name" binding:"notblank"`
	DripperFields
}

type UpdateDripperRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
	DripperFields
}

type DripperResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Manufacturer *string   `json:"manufacturer"`
	Size         *string   `json:"size"`
	ImagePath    *string   `json:"imagePath"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type FilterFields struct {
	Type      *string `json:"type"      binding:"omitempty,domain=filterType"`
	Size      *string `json:"size"      binding:"omitempty,domain=equipmentSize"`
	ImagePath *string `json:"imagePath"`
	Notes     *string `json:"notes"`
}

type CreateFilterRequest struct {
	Name string `json:"name" binding:"notblank"`
	FilterFields
}

type UpdateFilterRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank"`
	FilterFields
}

type FilterResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      *string   `json:"type"`
	Size      *string   `json:"size"`
	ImagePath *string   `json:"imagePath"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingFields are the taste dimensions scored from 1 to 5. They decode as
// numbers so that fractions fail the range check instead of the decoder.
type RatingFields struct {
	Acidity       *float64 `json:"acidity"       binding:"omitempty,range=rating"`
	Bitterness    *float64 `json:"bitterness"    binding:"omitempty,range=rating"`
	Sweetness     *float64 `json:"sweetness"     binding:"omitempty,range=rating"`
	Body          *string  `json:"body"          binding:"omitempty,domain=body"`
	Aftertaste    *float64 `json:"aftertaste"    binding:"omitempty,range=rating"`
	OverallRating *float64 `json:"overallRating" binding:"omitempty,range=rating"`
}

type TastingFields struct {
	DripperID        *uint    `json:"dripperId"`
	FilterID         *uint    `json:"filterId"`
	GrindSize        *float64 `json:"grindSize"        binding:"omitempty,range=grind"`
	BrewDate         *Date    `json:"brewDate"`
	WaterTemperature *int     `json:"waterTemperature" binding:"omitempty,range=temperature"`
	DoseGrams        *float64 `json:"doseGrams"        binding:"omitempty,range=nonzero"`
	WaterGrams       *float64 `json:"waterGrams"       binding:"omitempty,range=nonzero"`
	BrewTimeSeconds  *int     `json:"brewTimeSeconds"  binding:"omitempty,range=positive"`
	FlavorTags       []string `json:"flavorTags"`
	Notes            *string  `json:"notes"`
	ImagePath        *string  `json:"imagePath"`
	RatingFields
}

type CreateTastingRequest struct {
	CoffeeBeanID uint `json:"coffeeBeanId" binding:"required"`
	TastingFields
}

type UpdateTastingRequest struct {
	CoffeeBeanID *uint `json:"coffeeBeanId" binding:"omitempty,min=1"`
	TastingFields
}

type RatingAverages struct {
	OverallRating *float64 `json:"overallRating"`
	Acidity       *float64 `json:"acidity"`
	Bitterness    *float64 `json:"bitterness"`
	Sweetness     *float64 `json:"sweetness"`
	Aftertaste    *float64 `json:"aftertaste"`
}

type BeanRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	ShopName string `json:"shopName,omitempty"`
}

type TastingResponse struct {
	ID               uint                  `json:"id"`
	CoffeeBeanID     uint                  `json:"coffeeBeanId"`
	CoffeeBean       *BeanRef              `json:"coffeeBean,omitempty"`
	DripperID        *uint                 `json:"dripperId"`
	Dripper          *DripperResponse      `json:"dripper,omitempty"`
	FilterID         *uint                 `json:"filterId"`
	Filter           *FilterResponse       `json:"filter,omitempty"`
	GrindSize        *float64              `json:"grindSize"`
	BrewDate         time.Time             `json:"brewDate"`
	Acidity          *int                  `json:"acidity"`
	Bitterness       *int                  `json:"bitterness"`
	Sweetness        *int                  `json:"sweetness"`
	Body             *string               `json:"body"`
	Aftertaste       *int                  `json:"aftertaste"`
	OverallRating    *int                  `json:"overallRating"`
	FlavorTags       []string              `json:"flavorTags"`
	WaterTemperature *int                  `json:"waterTemperature"`
	DoseGrams        *float64              `json:"doseGrams"`
	WaterGrams       *float64              `json:"waterGrams"`
	BrewTimeSeconds  *int                  `json:"brewTimeSeconds"`
	Notes            *string               `json:"notes"`
	ImagePath        *string               `json:"imagePath"`
	TastingNotes     []TastingNoteResponse `json:"tastingNotes"`
	AverageRating    *RatingAverages       `json:"averageRating"`
	NoteCount        int                   `json:"noteCount"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

type TastingNoteFields struct {
	FlavorTags []string `json:"flavorTags"`
	Notes      *string  `json:"notes"`
	RatingFields
}

type CreateTastingNoteRequest struct {
	TastingEntryID uint   `json:"tastingEntryId" binding:"required"`
	TasterName     string `json:"tasterName"     binding:"notblank"`
	TastingNoteFields
}

type UpdateTastingNoteRequest struct {
	TastingEntryID *uint   `json:"tastingEntryId" binding:"omitempty,min=1"`
	TasterName     *string `json:"tasterName"     binding:"omitempty,notblank"`
	TastingNoteFields
}

type TastingNoteResponse struct {
	ID             uint      `json:"id"`
	TastingEntryID uint      `json:"tastingEntryId"`
	TasterName     string    `json:"tasterName"`
	Acidity        *int      `json:"acidity"`
	Bitterness     *int      `json:"bitterness"`
	Sweetness      *int      `json:"sweetness"`
	Body           *string   `json:"body"`
	Aftertaste     *int      `json:"aftertaste"`
	OverallRating  *int      `json:"overallRating"`
	FlavorTags     []string  `json:"flavorTags"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type DeleteImageRequest struct {
	Path string `json:"path" binding:"notblank"`
}

type UploadResponse struct {
	Success   bool   `json:"success"`
	ImagePath string `json:"imagePath"`
	FileName  string `json:"fileName"`
}

type BeanRankingResponse struct {
	CoffeeBeanID  uint    `json:"coffeeBeanId"`
	Name          string  `json:"name"`
	TastingCount  int64   `json:"tastingCount"`
	AverageRating float64 `json:"averageRating"`
}

type StatsResponse struct {
	BeanCount            int64                 `json:"beanCount"`
	InStockCount         int64                 `json:"inStockCount"`
	FinishedCount        int64                 `json:"finishedCount"`
	TotalSpent           decimal.Decimal       `json:"totalSpent"`
	ShopCount            int64                 `json:"shopCount"`
	TastingCount         int64                 `json:"tastingCount"`
	TastingNoteCount     int64                 `json:"tastingNoteCount"`
	AverageOverallRating *float64              `json:"averageOverallRating"`
	TopBeans             []BeanRankingResponse `json:"topBeans"`
}
