package entity

import "github.com/shopspring/decimal"

type Tour struct {
	Base
	Name           string          `db:"name"`
	Destination    *string         `db:"destination"`
	Description    string          `db:"description"`
	PricePerPerson decimal.Decimal `db:"price_per_person"`
	ImageURL       *string         `db:"image_url"`
}
