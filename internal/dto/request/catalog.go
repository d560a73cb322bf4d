package request

// Price fields travel as strings so amounts like "1500.00" survive the
// trip without float rounding.

type ActivityRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=120"`
	Description    string  `json:"description" validate:"max=2000"`
	PricePerPerson string  `json:"price_per_person" validate:"required"`
	ImageURL       *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type PackageRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=120"`
	Description    string   `json:"description" validate:"max=2000"`
	PricePerPerson string   `json:"price_per_person" validate:"required"`
	ActivityIDs    []string `json:"activity_ids" validate:"omitempty,dive,uuid4"`
}

type RoomTypeRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=120"`
	Description   string `json:"description" validate:"max=2000"`
	Capacity      int    `json:"capacity" validate:"required,min=1"`
	PricePerNight string `json:"price_per_night" validate:"required"`
	TotalRooms    int    `json:"total_rooms" validate:"required,min=1"`
	Available     *bool  `json:"available,omitempty"`
}

type RoomRequest struct {
	RoomTypeID string  `json:"room_type_id" validate:"required,uuid4"`
	Name       string  `json:"name" validate:"required,min=1,max=120"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type FoodRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=120"`
	PricePerPerson string `json:"price_per_person" validate:"required"`
}

type TourRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=120"`
	Destination    *string `json:"destination,omitempty" validate:"omitempty,max=120"`
	Description    string  `json:"description" validate:"max=2000"`
	PricePerPerson string  `json:"price_per_person" validate:"required"`
	ImageURL       *string `json:"image_url,omitempty" validate:"omitempty,url"`
}
