package response

import (
	"time"

	"resort-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// BookingQuote is the priced side of a booking: the gross charge, the
// configured discount, and what remains to pay.
type BookingQuote struct {
	AmountRequired decimal.Decimal `json:"amount_required"`
	Discount       decimal.Decimal `json:"discount"`
	Payable        decimal.Decimal `json:"payable"`
	Paid           decimal.Decimal `json:"paid"`
	Balance        decimal.Decimal `json:"balance"`
}

type BookedRoomResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	RoomTypeName  string          `json:"room_type_name"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	CheckIn       string    `json:"check_in"`
	CheckOut      string    `json:"check_out"`
	Nights        int       `json:"nights"`
	Pax           int       `json:"pax"`
	CreatedAt     time.Time `json:"created_at"`

	Rooms      []BookedRoomResponse `json:"rooms,omitempty"`
	Activities []ActivityResponse   `json:"activities,omitempty"`
	Packages   []PackageResponse    `json:"packages,omitempty"`
	Food       []FoodResponse       `json:"food,omitempty"`
	Tours      []TourResponse       `json:"tours,omitempty"`

	PaxDetails map[string]int `json:"pax_details,omitempty"`

	BookingQuote
}

func BookingDetailToResponse(detail *entity.BookingDetail, quote BookingQuote) BookingResponse {
	resp := BookingResponse{
		ID:            detail.ID.String(),
		CustomerName:  detail.CustomerName,
		CustomerEmail: detail.CustomerEmail,
		CheckIn:       detail.CheckIn.Format("2006-01-02"),
		CheckOut:      detail.CheckOut.Format("2006-01-02"),
		Nights:        detail.NightsSpent(),
		Pax:           detail.Pax,
		CreatedAt:     detail.CreatedAt,
		BookingQuote:  quote,
	}

	if detail.UserID != nil {
		id := detail.UserID.String()
		resp.UserID = &id
	}

	for _, room := range detail.Rooms {
		resp.Rooms = append(resp.Rooms, BookedRoomResponse{
			ID:            room.Room.ID.String(),
			Name:          room.Room.Name,
			RoomTypeName:  room.RoomType.Name,
			PricePerNight: room.RoomType.PricePerNight,
		})
	}

	for i := range detail.Activities {
		resp.Activities = append(resp.Activities, ActivityToResponse(&detail.Activities[i]))
	}
	for i := range detail.Packages {
		resp.Packages = append(resp.Packages, PackageToResponse(&detail.Packages[i], nil))
	}
	for i := range detail.Food {
		resp.Food = append(resp.Food, FoodToResponse(&detail.Food[i]))
	}
	for i := range detail.Tours {
		resp.Tours = append(resp.Tours, TourToResponse(&detail.Tours[i]))
	}

	if len(detail.PaxDetails) > 0 {
		resp.PaxDetails = make(map[string]int, len(detail.PaxDetails))
		for category, pax := range detail.PaxDetails {
			resp.PaxDetails[string(category)] = pax
		}
	}

	return resp
}

type AvailabilityResponse struct {
	RoomTypeID     string `json:"room_type_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	TotalRooms     int    `json:"total_rooms"`
	BookedRooms    int    `json:"booked_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}
