package entity

import "github.com/google/uuid"

type Room struct {
	Base
	RoomTypeID uuid.UUID `db:"room_type_id"`
	Name       string    `db:"name"`
	ImageURL   *string   `db:"image_url"`
}
