package entity

import "github.com/shopspring/decimal"

// RoomType is a bookable class of room with shared price and inventory.
type RoomType struct {
	Base
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Capacity      int             `db:"capacity"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	TotalRooms    int             `db:"total_rooms"`
	Available     bool            `db:"available"`
}
