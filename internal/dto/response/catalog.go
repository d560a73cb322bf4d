package response

import (
	"time"

	"resort-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ActivityResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	ImageURL       *string         `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:             activity.ID.String(),
		Name:           activity.Name,
		Description:    activity.Description,
		PricePerPerson: activity.PricePerPerson,
		ImageURL:       activity.ImageURL,
		CreatedAt:      activity.CreatedAt,
	}
}

type PackageResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	PricePerPerson decimal.Decimal    `json:"price_per_person"`
	Activities     []ActivityResponse `json:"activities,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func PackageToResponse(pkg *entity.Package, activities []*entity.Activity) PackageResponse {
	resp := PackageResponse{
		ID:             pkg.ID.String(),
		Name:           pkg.Name,
		Description:    pkg.Description,
		PricePerPerson: pkg.PricePerPerson,
		CreatedAt:      pkg.CreatedAt,
	}

	for _, activity := range activities {
		resp.Activities = append(resp.Activities, ActivityToResponse(activity))
	}

	return resp
}

type RoomTypeResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	TotalRooms    int             `json:"total_rooms"`
	Available     bool            `json:"available"`
	FreeToday     int             `json:"free_today"`
	CreatedAt     time.Time       `json:"created_at"`
}

func RoomTypeToResponse(roomType *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:            roomType.ID.String(),
		Name:          roomType.Name,
		Description:   roomType.Description,
		Capacity:      roomType.Capacity,
		PricePerNight: roomType.PricePerNight,
		TotalRooms:    roomType.TotalRooms,
		Available:     roomType.Available,
		CreatedAt:     roomType.CreatedAt,
	}
}

type RoomResponse struct {
	ID           string  `json:"id"`
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name,omitempty"`
	Name         string  `json:"name"`
	ImageURL     *string `json:"image_url,omitempty"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		RoomTypeID: room.RoomTypeID.String(),
		Name:       room.Name,
		ImageURL:   room.ImageURL,
	}
}

type FoodResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FoodToResponse(food *entity.Food) FoodResponse {
	return FoodResponse{
		ID:             food.ID.String(),
		Name:           food.Name,
		PricePerPerson: food.PricePerPerson,
		CreatedAt:      food.CreatedAt,
	}
}

type TourResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Destination    *string         `json:"destination,omitempty"`
	Description    string          `json:"description"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	ImageURL       *string         `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func TourToResponse(tour *entity.Tour) TourResponse {
	return TourResponse{
		ID:             tour.ID.String(),
		Name:           tour.Name,
		Destination:    tour.Destination,
		Description:    tour.Description,
		PricePerPerson: tour.PricePerPerson,
		ImageURL:       tour.ImageURL,
		CreatedAt:      tour.CreatedAt,
	}
}
