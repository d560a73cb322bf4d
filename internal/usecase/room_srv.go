package usecase

import (
	"context"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/database"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateType(ctx context.Context, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error)
	GetType(ctx context.Context, id uuid.UUID) (*response.RoomTypeResponse, error)
	ListTypes(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.RoomTypeResponse], error)
	UpdateType(ctx context.Context, id uuid.UUID, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error)
	DeleteType(ctx context.Context, id uuid.UUID) error

	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	ListRooms(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *request.RoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	db       database.PgxIface
	rooms    repository.RoomRepository
	types    repository.RoomTypeRepository
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewRoomService(db database.PgxIface, rooms repository.RoomRepository, types repository.RoomTypeRepository, bookings repository.BookingRepository, log *zap.Logger) RoomService {
	return &roomService{
		db:       db,
		rooms:    rooms,
		types:    types,
		bookings: bookings,
		log:      log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateType(ctx context.Context, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	price, err := parseAmount(req.PricePerNight)
	if err != nil {
		return nil, err
	}

	existing, err := s.types.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("room type %s already exists", req.Name)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		PricePerNight: price,
		TotalRooms:    req.TotalRooms,
		Available:     available,
	}

	if err := s.types.Create(ctx, roomType); err != nil {
		return nil, err
	}

	s.log.Info("Room type created", zap.String("room_type_id", roomType.ID.String()))

	return s.typeToResponse(ctx, roomType)
}

func (s *roomService) GetType(ctx context.Context, id uuid.UUID) (*response.RoomTypeResponse, error) {
	roomType, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperr.NotFound("room type %s not found", id.String())
	}

	return s.typeToResponse(ctx, roomType)
}

func (s *roomService) ListTypes(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.RoomTypeResponse], error) {
	roomTypes, err := s.types.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.types.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.RoomTypeResponse, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		resp, err := s.typeToResponse(ctx, roomType)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *roomService) UpdateType(ctx context.Context, id uuid.UUID, req *request.RoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	roomType, err := s.types.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperr.NotFound("room type %s not found", id.String())
	}

	price, err := parseAmount(req.PricePerNight)
	if err != nil {
		return nil, err
	}

	roomType.Name = req.Name
	roomType.Description = req.Description
	roomType.Capacity = req.Capacity
	roomType.PricePerNight = price
	roomType.TotalRooms = req.TotalRooms
	if req.Available != nil {
		roomType.Available = *req.Available
	}
	roomType.UpdatedAt = time.Now()

	if err := s.types.Update(ctx, roomType); err != nil {
		return nil, err
	}

	return s.typeToResponse(ctx, roomType)
}

func (s *roomService) DeleteType(ctx context.Context, id uuid.UUID) error {
	return s.types.Delete(ctx, id)
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	roomTypeID, roomType, err := s.validateRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomTypeID: roomTypeID,
		Name:       req.Name,
		ImageURL:   req.ImageURL,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created", zap.String("room_id", room.ID.String()))

	resp := response.RoomToResponse(room)
	resp.RoomTypeName = roomType.Name
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms, err := s.rooms.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, response.RoomToResponse(room))
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id uuid.UUID, req *request.RoomRequest) (*response.RoomResponse, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperr.NotFound("room %s not found", id.String())
	}

	roomTypeID, roomType, err := s.validateRoom(ctx, req)
	if err != nil {
		return nil, err
	}

	room.RoomTypeID = roomTypeID
	room.Name = req.Name
	room.ImageURL = req.ImageURL
	room.UpdatedAt = time.Now()

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	resp := response.RoomToResponse(room)
	resp.RoomTypeName = roomType.Name
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.rooms.Delete(ctx, id)
}

func (s *roomService) validateRoom(ctx context.Context, req *request.RoomRequest) (uuid.UUID, *entity.RoomType, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return uuid.Nil, nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := utils.ParseUUID(req.RoomTypeID)
	if err != nil {
		return uuid.Nil, nil, apperr.Validation("invalid room type id")
	}

	roomType, err := s.types.FindByID(ctx, roomTypeID)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if roomType == nil {
		return uuid.Nil, nil, apperr.NotFound("room type %s not found", req.RoomTypeID)
	}

	return roomTypeID, roomType, nil
}

// typeToResponse derives how many rooms of the type are free tonight.
func (s *roomService) typeToResponse(ctx context.Context, roomType *entity.RoomType) (*response.RoomTypeResponse, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	booked, err := s.bookings.CountOverlapping(ctx, s.db, roomType.ID, today, today.AddDate(0, 0, 1), nil)
	if err != nil {
		return nil, err
	}

	free := roomType.TotalRooms - booked
	if free < 0 {
		free = 0
	}

	resp := response.RoomTypeToResponse(roomType)
	resp.FreeToday = free
	return &resp, nil
}
