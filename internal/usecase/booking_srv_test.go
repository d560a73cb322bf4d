package usecase

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/database"
	"resort-booking/pkg/roles"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo overrides only what a test touches; anything else panics.
type fakeBookingRepo struct {
	repository.BookingRepository
	createdToday int64
	countedDay   time.Time
}

func (f *fakeBookingRepo) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	f.countedDay = day
	return f.createdToday, nil
}

func newGateService(createdToday int64) *bookingService {
	return &bookingService{
		repo: &repository.Repository{Booking: &fakeBookingRepo{createdToday: createdToday}},
		log:  zap.NewNop(),
	}
}

func intPtr(v int) *int { return &v }

func selectionOf(pax *int, ids ...string) request.CategorySelection {
	return request.CategorySelection{Items: ids, Pax: pax}
}

func TestParseSelectionsCustomerLosesRestrictedCategories(t *testing.T) {
	roomID := uuid.NewString()
	packageID := uuid.NewString()

	req := &request.BookingRequest{
		Rooms:      selectionOf(intPtr(2), roomID),
		Activities: selectionOf(nil, uuid.NewString()),
		Packages:   selectionOf(nil, packageID),
		Food:       selectionOf(intPtr(4), uuid.NewString()),
		Tours:      selectionOf(nil, uuid.NewString()),
	}

	sel, err := parseSelections(req, roles.Customer)
	require.NoError(t, err)

	assert.Len(t, sel.items[entity.CategoryRooms], 1)
	assert.Len(t, sel.items[entity.CategoryPackages], 1)
	assert.Empty(t, sel.items[entity.CategoryActivities])
	assert.Empty(t, sel.items[entity.CategoryFood])
	assert.Empty(t, sel.items[entity.CategoryTours])

	// Pax overrides for dropped categories are dropped too.
	assert.Equal(t, 2, sel.pax[entity.CategoryRooms])
	_, kept := sel.pax[entity.CategoryFood]
	assert.False(t, kept)
}

func TestParseSelectionsStaffKeepsEverything(t *testing.T) {
	req := &request.BookingRequest{
		Rooms:      selectionOf(nil, uuid.NewString()),
		Activities: selectionOf(nil, uuid.NewString()),
		Packages:   selectionOf(nil, uuid.NewString()),
		Food:       selectionOf(nil, uuid.NewString()),
		Tours:      selectionOf(nil, uuid.NewString()),
	}

	for _, role := range []roles.Role{roles.Staff, roles.Admin} {
		sel, err := parseSelections(req, role)
		require.NoError(t, err)
		for _, category := range entity.Categories() {
			assert.Len(t, sel.items[category], 1, "category %s for role %s", category, role)
		}
	}
}

func TestParseSelectionsRejectsBadID(t *testing.T) {
	req := &request.BookingRequest{
		Rooms: selectionOf(nil, "not-a-uuid"),
	}

	_, err := parseSelections(req, roles.Admin)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		ownerID *uuid.UUID
		userID  uuid.UUID
		role    roles.Role
		wantErr bool
	}{
		{"owner allowed", &owner, owner, roles.Customer, false},
		{"admin allowed", &owner, stranger, roles.Admin, false},
		{"stranger rejected", &owner, stranger, roles.Customer, true},
		{"staff is not admin", &owner, stranger, roles.Staff, true},
		{"ownerless booking rejects non-admin", nil, stranger, roles.Customer, true},
		{"ownerless booking allows admin", nil, stranger, roles.Admin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireOwnerOrAdmin(tt.ownerID, tt.userID, tt.role)
			if tt.wantErr {
				assert.True(t, apperr.Is(err, apperr.KindPermission))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckBookingGatesMaintenance(t *testing.T) {
	s := newGateService(0)
	setting := &entity.SystemSetting{MaintenanceMode: true}

	err := s.checkBookingGates(context.Background(), setting, roles.Customer)
	assert.True(t, apperr.Is(err, apperr.KindPermission))

	err = s.checkBookingGates(context.Background(), setting, roles.Staff)
	assert.True(t, apperr.Is(err, apperr.KindPermission))

	// Admins bypass maintenance mode.
	assert.NoError(t, s.checkBookingGates(context.Background(), setting, roles.Admin))
}

func TestCheckBookingGatesDailyCap(t *testing.T) {
	setting := &entity.SystemSetting{MaxDailyBookings: 3}

	err := newGateService(3).checkBookingGates(context.Background(), setting, roles.Customer)
	assert.True(t, apperr.Is(err, apperr.KindCapacity))

	assert.NoError(t, newGateService(2).checkBookingGates(context.Background(), setting, roles.Customer))
}

func TestCheckBookingGatesUnlimited(t *testing.T) {
	// Zero cap means no limit, and a missing settings row gates nothing.
	setting := &entity.SystemSetting{MaxDailyBookings: 0}
	s := newGateService(1000)

	assert.NoError(t, s.checkBookingGates(context.Background(), setting, roles.Customer))
	assert.NoError(t, s.checkBookingGates(context.Background(), nil, roles.Customer))
}

func TestValidateBookingRequestDates(t *testing.T) {
	s := &bookingService{log: zap.NewNop()}

	base := request.BookingRequest{Pax: 2, CheckIn: "2026-09-10", CheckOut: "2026-09-12"}

	checkIn, checkOut, err := s.validateBookingRequest(&base)
	require.NoError(t, err)
	assert.True(t, checkOut.After(checkIn))

	sameDay := base
	sameDay.CheckOut = "2026-09-10"
	_, _, err = s.validateBookingRequest(&sameDay)
	assert.NoError(t, err, "same-day stays are valid")

	backwards := base
	backwards.CheckOut = "2026-09-09"
	_, _, err = s.validateBookingRequest(&backwards)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestActorFromContext(t *testing.T) {
	_, _, err := actorFromContext(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindPermission))

	userID := uuid.New()
	ctx := utils.SetUserContext(context.Background(), userID, roles.Staff)

	gotID, gotRole, err := actorFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, roles.Staff, gotRole)
}

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeDB struct {
	database.PgxIface
}

func (fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeRoomTypeRepo struct {
	repository.RoomTypeRepository
	types map[uuid.UUID]*entity.RoomType
}

func (f *fakeRoomTypeRepo) LockForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.RoomType, error) {
	return f.types[id], nil
}

type fakeRoomRepo struct {
	repository.RoomRepository
	rooms []entity.RoomWithType
}

func (f *fakeRoomRepo) FindWithTypeByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.RoomWithType, error) {
	var found []entity.RoomWithType
	for _, id := range ids {
		for _, room := range f.rooms {
			if room.Room.ID == id {
				found = append(found, room)
			}
		}
	}
	return found, nil
}

type fakeSettingRepo struct {
	repository.SettingRepository
}

func (f *fakeSettingRepo) Get(ctx context.Context) (*entity.SystemSetting, error) { return nil, nil }

type fakeStaffUserRepo struct {
	repository.UserRepository
}

func (f *fakeStaffUserRepo) FindByMinimumRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	return nil, nil
}

type fakeNotificationWriter struct {
	repository.NotificationRepository
}

func (f *fakeNotificationWriter) Create(ctx context.Context, notification *entity.Notification) error {
	return nil
}

// fakeCapacityBookingRepo backs the create/edit flows with an in-memory
// picture of one room type's occupancy: at most one booking holds it.
type fakeCapacityBookingRepo struct {
	repository.BookingRepository
	holder   *uuid.UUID
	existing *entity.Booking
	saved    *entity.Booking
}

func (f *fakeCapacityBookingRepo) CountOverlapping(ctx context.Context, q database.Querier, roomTypeID uuid.UUID, checkIn, checkOut time.Time, excludeID *uuid.UUID) (int, error) {
	if f.holder == nil {
		return 0, nil
	}
	if excludeID != nil && *excludeID == *f.holder {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeCapacityBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.existing != nil && f.existing.ID == id {
		return f.existing, nil
	}
	return nil, nil
}

func (f *fakeCapacityBookingRepo) Create(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	f.saved = booking
	return nil
}

func (f *fakeCapacityBookingRepo) Update(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	f.saved = booking
	return nil
}

func (f *fakeCapacityBookingRepo) SetSelection(ctx context.Context, q database.Querier, bookingID uuid.UUID, category entity.Category, itemIDs []uuid.UUID) error {
	return nil
}

func (f *fakeCapacityBookingRepo) ReplacePaxDetails(ctx context.Context, q database.Querier, bookingID uuid.UUID, details map[entity.Category]int) error {
	return nil
}

func (f *fakeCapacityBookingRepo) FindDetail(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	if f.saved == nil || f.saved.ID != id {
		return nil, nil
	}
	return &entity.BookingDetail{Booking: *f.saved, PaxDetails: map[entity.Category]int{}}, nil
}

func singleRoomSetup() (*entity.RoomType, entity.RoomWithType) {
	roomType := &entity.RoomType{
		Base:          entity.Base{ID: uuid.New()},
		Name:          "Lakeview",
		PricePerNight: decimal.NewFromInt(1500),
		TotalRooms:    1,
		Available:     true,
	}
	room := entity.RoomWithType{
		Room:     entity.Room{Base: entity.Base{ID: uuid.New()}, RoomTypeID: roomType.ID, Name: "L1"},
		RoomType: *roomType,
	}
	return roomType, room
}

func newCapacityService(bookings *fakeCapacityBookingRepo, roomType *entity.RoomType, room entity.RoomWithType) *bookingService {
	return &bookingService{
		db: fakeDB{},
		repo: &repository.Repository{
			Booking:      bookings,
			RoomType:     &fakeRoomTypeRepo{types: map[uuid.UUID]*entity.RoomType{roomType.ID: roomType}},
			Room:         &fakeRoomRepo{rooms: []entity.RoomWithType{room}},
			Setting:      &fakeSettingRepo{},
			User:         &fakeStaffUserRepo{},
			Notification: &fakeNotificationWriter{},
		},
		log: zap.NewNop(),
	}
}

func roomBookingRequest(roomID uuid.UUID) *request.BookingRequest {
	return &request.BookingRequest{
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Pax:      2,
		Rooms:    selectionOf(nil, roomID.String()),
	}
}

func TestCreateRejectsWhenRoomTypeFull(t *testing.T) {
	roomType, room := singleRoomSetup()
	other := uuid.New()
	bookings := &fakeCapacityBookingRepo{holder: &other}
	s := newCapacityService(bookings, roomType, room)

	ctx := utils.SetUserContext(context.Background(), uuid.New(), roles.Customer)

	_, err := s.Create(ctx, roomBookingRequest(room.Room.ID))
	assert.True(t, apperr.Is(err, apperr.KindCapacity))
	assert.Nil(t, bookings.saved, "a rejected booking must not be written")
}

func TestCreateBooksLastRoom(t *testing.T) {
	roomType, room := singleRoomSetup()
	bookings := &fakeCapacityBookingRepo{}
	s := newCapacityService(bookings, roomType, room)

	ctx := utils.SetUserContext(context.Background(), uuid.New(), roles.Customer)

	resp, err := s.Create(ctx, roomBookingRequest(room.Room.ID))
	require.NoError(t, err)
	require.NotNil(t, bookings.saved)
	assert.Equal(t, 2, resp.Nights)

	// Timestamps are UTC so the daily cap buckets rows consistently.
	assert.Equal(t, time.UTC, bookings.saved.CreatedAt.Location())
}

func TestCreateRejectsClosedRoomType(t *testing.T) {
	roomType, room := singleRoomSetup()
	roomType.Available = false
	bookings := &fakeCapacityBookingRepo{}
	s := newCapacityService(bookings, roomType, room)

	ctx := utils.SetUserContext(context.Background(), uuid.New(), roles.Customer)

	_, err := s.Create(ctx, roomBookingRequest(room.Room.ID))
	assert.True(t, apperr.Is(err, apperr.KindCapacity))
}

func TestUpdateExcludesOwnBookingFromOverlapCount(t *testing.T) {
	roomType, room := singleRoomSetup()
	owner := uuid.New()
	existing := &entity.Booking{
		Base:     entity.Base{ID: uuid.New()},
		UserID:   &owner,
		CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Pax:      2,
	}

	// The only room is held by the booking being edited.
	bookings := &fakeCapacityBookingRepo{existing: existing, holder: &existing.ID}
	s := newCapacityService(bookings, roomType, room)

	ctx := utils.SetUserContext(context.Background(), owner, roles.Customer)

	_, err := s.Update(ctx, existing.ID, roomBookingRequest(room.Room.ID))
	require.NoError(t, err, "an edit must not collide with its own room hold")
	require.NotNil(t, bookings.saved)
	assert.Equal(t, time.UTC, bookings.saved.UpdatedAt.Location())
}

func TestUpdateStillBlockedByOtherBooking(t *testing.T) {
	roomType, room := singleRoomSetup()
	owner := uuid.New()
	existing := &entity.Booking{
		Base:     entity.Base{ID: uuid.New()},
		UserID:   &owner,
		CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Pax:      2,
	}
	other := uuid.New()

	bookings := &fakeCapacityBookingRepo{existing: existing, holder: &other}
	s := newCapacityService(bookings, roomType, room)

	ctx := utils.SetUserContext(context.Background(), owner, roles.Customer)

	_, err := s.Update(ctx, existing.ID, roomBookingRequest(room.Room.ID))
	assert.True(t, apperr.Is(err, apperr.KindCapacity))
	assert.Nil(t, bookings.saved)
}

func TestCheckBookingGatesCountsUTCDay(t *testing.T) {
	fake := &fakeBookingRepo{}
	s := &bookingService{
		repo: &repository.Repository{Booking: fake},
		log:  zap.NewNop(),
	}
	setting := &entity.SystemSetting{MaxDailyBookings: 5}

	require.NoError(t, s.checkBookingGates(context.Background(), setting, roles.Customer))
	assert.Equal(t, time.UTC, fake.countedDay.Location())
}
