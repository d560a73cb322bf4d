package entity

import "github.com/shopspring/decimal"

type Activity struct {
	Base
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	PricePerPerson decimal.Decimal `db:"price_per_person"`
	ImageURL       *string         `db:"image_url"`
}
