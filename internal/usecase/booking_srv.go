package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/database"
	"resort-booking/pkg/roles"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.BookingRequest) (*response.BookingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error)
	List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type bookingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// selections is the parsed per-category request payload.
type selections struct {
	items map[entity.Category][]uuid.UUID
	pax   map[entity.Category]int
}

func (s *bookingService) Create(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := s.validateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.Setting.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkBookingGates(ctx, setting, role); err != nil {
		return nil, err
	}

	sel, err := parseSelections(req, role)
	if err != nil {
		return nil, err
	}
	rooms, err := s.resolveSelections(ctx, sel)
	if err != nil {
		return nil, err
	}

	// UTC so the daily-cap count buckets the row into the same day it is
	// checked against.
	now := time.Now().UTC()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        &userID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Pax:           req.Pax,
		Paid:          decimal.Zero,
	}

	err = s.withinTx(ctx, func(tx database.Querier) error {
		if err := s.ensureCapacity(ctx, tx, rooms, checkIn, checkOut, nil); err != nil {
			return err
		}
		if err := s.repo.Booking.Create(ctx, tx, booking); err != nil {
			return err
		}
		return s.writeSelections(ctx, tx, booking.ID, sel)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
	)

	go s.notifyBookingCreated(booking.ID, userID)

	return s.loadResponse(ctx, booking.ID, setting)
}

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, req *request.BookingRequest) (*response.BookingResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", id.String())
	}
	if err := requireOwnerOrAdmin(booking.UserID, userID, role); err != nil {
		return nil, err
	}

	checkIn, checkOut, err := s.validateBookingRequest(req)
	if err != nil {
		return nil, err
	}

	sel, err := parseSelections(req, role)
	if err != nil {
		return nil, err
	}
	rooms, err := s.resolveSelections(ctx, sel)
	if err != nil {
		return nil, err
	}

	booking.CustomerName = req.CustomerName
	booking.CustomerEmail = req.CustomerEmail
	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.Pax = req.Pax
	booking.UpdatedAt = time.Now().UTC()

	err = s.withinTx(ctx, func(tx database.Querier) error {
		// The booking's own rooms must not count against it.
		if err := s.ensureCapacity(ctx, tx, rooms, checkIn, checkOut, &booking.ID); err != nil {
			return err
		}
		if err := s.repo.Booking.Update(ctx, tx, booking); err != nil {
			return err
		}
		return s.writeSelections(ctx, tx, booking.ID, sel)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking updated", zap.String("booking_id", id.String()))

	setting, err := s.repo.Setting.Get(ctx)
	if err != nil {
		return nil, err
	}

	return s.loadResponse(ctx, booking.ID, setting)
}

func (s *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperr.NotFound("booking %s not found", id.String())
	}
	if err := requireOwnerOrAdmin(booking.UserID, userID, role); err != nil {
		return err
	}

	return s.repo.Booking.Delete(ctx, id)
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*response.BookingResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", id.String())
	}
	if err := requireOwnerOrAdmin(booking.UserID, userID, role); err != nil {
		return nil, err
	}

	setting, err := s.repo.Setting.Get(ctx)
	if err != nil {
		return nil, err
	}

	return s.loadResponse(ctx, id, setting)
}

func (s *bookingService) List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var (
		bookings []*entity.Booking
		total    int64
	)

	// Admins see every booking, everyone else only their own.
	if role.AtLeast(roles.Admin) {
		bookings, err = s.repo.Booking.FindAll(ctx, page.Limit(), page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = s.repo.Booking.CountAll(ctx)
	} else {
		bookings, err = s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
		if err != nil {
			return nil, err
		}
		total, err = s.repo.Booking.CountByUserID(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.Setting.Get(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp, err := s.loadResponse(ctx, booking.ID, setting)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.Page, page.Limit(), total), nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := utils.ParseUUID(req.RoomTypeID)
	if err != nil {
		return nil, apperr.Validation("invalid room type id")
	}
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, apperr.Validation("invalid check_in date")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, apperr.Validation("invalid check_out date")
	}
	if checkOut.Before(checkIn) {
		return nil, apperr.Validation("check_out must not be before check_in")
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperr.NotFound("room type %s not found", req.RoomTypeID)
	}

	booked, err := s.repo.Booking.CountOverlapping(ctx, s.db, roomTypeID, checkIn, checkOut, nil)
	if err != nil {
		return nil, err
	}

	free := roomType.TotalRooms - booked
	if free < 0 {
		free = 0
	}

	return &response.AvailabilityResponse{
		RoomTypeID:     roomTypeID.String(),
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		TotalRooms:     roomType.TotalRooms,
		BookedRooms:    booked,
		AvailableRooms: free,
	}, nil
}

func (s *bookingService) validateBookingRequest(req *request.BookingRequest) (time.Time, time.Time, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return time.Time{}, time.Time{}, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid check_in date")
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("invalid check_out date")
	}
	if checkOut.Before(checkIn) {
		return time.Time{}, time.Time{}, apperr.Validation("check_out must not be before check_in")
	}

	return checkIn, checkOut, nil
}

// checkBookingGates enforces the system settings that can pause intake.
func (s *bookingService) checkBookingGates(ctx context.Context, setting *entity.SystemSetting, role roles.Role) error {
	if setting == nil {
		return nil
	}

	if setting.MaintenanceMode && !role.AtLeast(roles.Admin) {
		return apperr.Permission("bookings are paused for maintenance")
	}

	if setting.MaxDailyBookings > 0 {
		count, err := s.repo.Booking.CountCreatedOn(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		if count >= int64(setting.MaxDailyBookings) {
			return apperr.Capacity("daily booking limit reached, try again tomorrow")
		}
	}

	return nil
}

// parseSelections converts the request payload into typed selections.
// Customers may only book rooms and packages, the other categories are
// dropped from their submissions.
func parseSelections(req *request.BookingRequest, role roles.Role) (*selections, error) {
	customer := !role.AtLeast(roles.Staff)

	raw := map[entity.Category]request.CategorySelection{
		entity.CategoryRooms:      req.Rooms,
		entity.CategoryActivities: req.Activities,
		entity.CategoryPackages:   req.Packages,
		entity.CategoryFood:       req.Food,
		entity.CategoryTours:      req.Tours,
	}

	sel := &selections{
		items: make(map[entity.Category][]uuid.UUID),
		pax:   make(map[entity.Category]int),
	}

	for _, category := range entity.Categories() {
		payload := raw[category]

		if customer && (category == entity.CategoryActivities || category == entity.CategoryFood || category == entity.CategoryTours) {
			continue
		}

		ids, err := utils.ParseUUIDs(payload.Items)
		if err != nil {
			return nil, apperr.Validation("invalid %s item id", category)
		}
		sel.items[category] = ids

		if payload.Pax != nil {
			sel.pax[category] = *payload.Pax
		}
	}

	return sel, nil
}

// resolveSelections verifies every referenced catalog item exists and
// returns the selected rooms joined with their types.
func (s *bookingService) resolveSelections(ctx context.Context, sel *selections) ([]entity.RoomWithType, error) {
	rooms, err := s.repo.Room.FindWithTypeByIDs(ctx, sel.items[entity.CategoryRooms])
	if err != nil {
		return nil, err
	}
	if len(rooms) != len(sel.items[entity.CategoryRooms]) {
		return nil, apperr.NotFound("one or more selected rooms do not exist")
	}

	checks := []struct {
		category entity.Category
		count    func(context.Context, []uuid.UUID) (int, error)
	}{
		{entity.CategoryActivities, func(ctx context.Context, ids []uuid.UUID) (int, error) {
			items, err := s.repo.Activity.FindByIDs(ctx, ids)
			return len(items), err
		}},
		{entity.CategoryPackages, func(ctx context.Context, ids []uuid.UUID) (int, error) {
			items, err := s.repo.Package.FindByIDs(ctx, ids)
			return len(items), err
		}},
		{entity.CategoryFood, func(ctx context.Context, ids []uuid.UUID) (int, error) {
			items, err := s.repo.Food.FindByIDs(ctx, ids)
			return len(items), err
		}},
		{entity.CategoryTours, func(ctx context.Context, ids []uuid.UUID) (int, error) {
			items, err := s.repo.Tour.FindByIDs(ctx, ids)
			return len(items), err
		}},
	}

	for _, check := range checks {
		ids := sel.items[check.category]
		if len(ids) == 0 {
			continue
		}
		found, err := check.count(ctx, ids)
		if err != nil {
			return nil, err
		}
		if found != len(ids) {
			return nil, apperr.NotFound("one or more selected %s do not exist", check.category)
		}
	}

	return rooms, nil
}

// ensureCapacity locks the affected room types in id order and rejects the
// write when any of them has no rooms left for the requested range.
func (s *bookingService) ensureCapacity(ctx context.Context, tx database.Querier, rooms []entity.RoomWithType, checkIn, checkOut time.Time, excludeID *uuid.UUID) error {
	seen := make(map[uuid.UUID]bool)
	var typeIDs []uuid.UUID
	for _, room := range rooms {
		if !seen[room.RoomTypeID] {
			seen[room.RoomTypeID] = true
			typeIDs = append(typeIDs, room.RoomTypeID)
		}
	}

	// Stable lock order keeps concurrent bookings from deadlocking.
	sort.Slice(typeIDs, func(i, j int) bool {
		return typeIDs[i].String() < typeIDs[j].String()
	})

	for _, typeID := range typeIDs {
		roomType, err := s.repo.RoomType.LockForUpdate(ctx, tx, typeID)
		if err != nil {
			return err
		}
		if roomType == nil {
			return apperr.NotFound("room type %s not found", typeID.String())
		}
		if !roomType.Available {
			return apperr.Capacity("%s rooms are not open for booking", roomType.Name)
		}

		booked, err := s.repo.Booking.CountOverlapping(ctx, tx, typeID, checkIn, checkOut, excludeID)
		if err != nil {
			return err
		}
		if booked+1 > roomType.TotalRooms {
			return apperr.Capacity("no %s rooms left for the selected dates", roomType.Name)
		}
	}

	return nil
}

func (s *bookingService) writeSelections(ctx context.Context, tx database.Querier, bookingID uuid.UUID, sel *selections) error {
	for _, category := range entity.Categories() {
		if err := s.repo.Booking.SetSelection(ctx, tx, bookingID, category, sel.items[category]); err != nil {
			return err
		}
	}
	return s.repo.Booking.ReplacePaxDetails(ctx, tx, bookingID, sel.pax)
}

func (s *bookingService) withinTx(ctx context.Context, fn func(tx database.Querier) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (s *bookingService) loadResponse(ctx context.Context, id uuid.UUID, setting *entity.SystemSetting) (*response.BookingResponse, error) {
	detail, err := s.repo.Booking.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, apperr.NotFound("booking %s not found", id.String())
	}

	discountRate := decimal.Zero
	if setting != nil {
		discountRate = setting.DiscountRate
	}

	resp := response.BookingDetailToResponse(detail, ComputeQuote(detail, discountRate))
	return &resp, nil
}

// notifyBookingCreated fans a notification out to the booking owner and
// every staff member. Runs detached from the request.
func (s *bookingService) notifyBookingCreated(bookingID, ownerID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	recipients := map[uuid.UUID]bool{ownerID: true}
	staff, err := s.repo.User.FindByMinimumRole(ctx, entity.RoleStaff)
	if err != nil {
		s.log.Warn("Failed to load staff for booking notification", zap.Error(err))
	}
	for _, user := range staff {
		recipients[user.ID] = true
	}

	message := fmt.Sprintf("Booking %s has been placed", bookingID.String())
	for userID := range recipients {
		notification := &entity.Notification{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			UserID:  userID,
			Message: message,
			Type:    entity.NotificationBooking,
		}
		if err := s.repo.Notification.Create(ctx, notification); err != nil {
			s.log.Warn("Failed to create booking notification",
				zap.Error(err),
				zap.String("user_id", userID.String()),
			)
		}
	}
}

func actorFromContext(ctx context.Context) (uuid.UUID, roles.Role, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, roles.Customer, apperr.Permission("not authenticated")
	}
	role, _ := utils.GetRoleFromContext(ctx)
	return userID, role, nil
}

func requireOwnerOrAdmin(ownerID *uuid.UUID, userID uuid.UUID, role roles.Role) error {
	if role.AtLeast(roles.Admin) {
		return nil
	}
	if ownerID != nil && *ownerID == userID {
		return nil
	}
	return apperr.Permission("you can only manage your own bookings")
}
