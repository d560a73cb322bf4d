package entity

import "github.com/shopspring/decimal"

type Food struct {
	Base
	Name           string          `db:"name"`
	PricePerPerson decimal.Decimal `db:"price_per_person"`
}
