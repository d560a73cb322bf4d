package request

// CategorySelection picks items in one catalog category and optionally
// overrides the head count just for that category.
type CategorySelection struct {
	Items []string `json:"items" validate:"omitempty,dive,uuid4"`
	Pax   *int     `json:"pax,omitempty" validate:"omitempty,min=1"`
}

type BookingRequest struct {
	CustomerName  *string `json:"customer_name,omitempty" validate:"omitempty,min=1,max=120"`
	CustomerEmail *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	CheckIn       string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Pax           int     `json:"pax" validate:"required,min=1"`

	Rooms      CategorySelection `json:"rooms"`
	Activities CategorySelection `json:"activities"`
	Packages   CategorySelection `json:"packages"`
	Food       CategorySelection `json:"food"`
	Tours      CategorySelection `json:"tours"`
}

type AvailabilityRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
