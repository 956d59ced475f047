package model

import "github.com/shopspring/decimal"

type JournalStats struct {
	BeanCount            int64
	InStockCount         int64
	FinishedCount        int64
	TotalSpent           decimal.NullDecimal
	ShopCount            int64
	TastingCount         int64
	TastingNoteCount     int64
	AverageOverallRating *float64
}

type BeanRanking struct {
	CoffeeBeanID  uint
	Name          string
	TastingCount  int64
	AverageRating float64
}
