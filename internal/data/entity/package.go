package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package bundles a set of activities under one per-person price.
type Package struct {
	Base
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	PricePerPerson decimal.Decimal `db:"price_per_person"`

	// ActivityIDs is loaded from the package_activities join table.
	ActivityIDs []uuid.UUID `db:"-"`
}
