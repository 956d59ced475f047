package model

import "github.com/shopspring/decimal"

// BeanDraft is a bean pre-filled from a shop's product page. It is never
// stored; the client turns it into a CoffeeBean.
type BeanDraft struct {
	Name        string
	Description string
	ImageURL    string
	Price       decimal.NullDecimal
	ShopName    string
	SourceURL   string
	Source      string
}
