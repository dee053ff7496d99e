package booking

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByTourist(ctx context.Context, touristID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, touristID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProviderReader struct {
	mock.Mock
}

func (m *MockProviderReader) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderReader) GetByOwner(ctx context.Context, ownerID int64) (*domain.Provider, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockContactWriter struct {
	mock.Mock
}

func (m *MockContactWriter) Create(ctx context.Context, cs *domain.ContactSubmission) error {
	args := m.Called(ctx, cs)
	if cs != nil {
		cs.ID = 77
	}
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(bookings *MockBookingRepository, providers *MockProviderReader, users *MockUserReader, contacts *MockContactWriter, multiplier float64) *Service {
	return NewService(bookings, providers, users, contacts, multiplier, testLogger())
}

func testContact() ContactPayload {
	return ContactPayload{Name: "Anna Weber", Email: "anna@example.com"}
}

func TestCreateProviderBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockProviders := new(MockProviderReader)
	mockContacts := new(MockContactWriter)

	mockProviders.On("GetByID", mock.Anything, int64(5)).Return(&domain.Provider{
		ID:        5,
		BasePrice: 100,
		Approved:  true,
	}, nil)
	mockContacts.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockProviders, new(MockUserReader), mockContacts, 1)

	b, err := service.CreateProviderBooking(context.Background(), 42, domain.RoleTourist, CreateProviderBookingRequest{
		ProviderID: 5,
		Date:       "2026-10-12",
		TimeSlot:   "morning",
		Adults:     2,
		Children:   1,
		Contact:    testContact(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 250.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(42), b.TouristID)
	assert.NotNil(t, b.ContactID)
	assert.Equal(t, int64(77), *b.ContactID)
	mockContacts.AssertExpectations(t)
}

func TestCreateProviderBooking_ContactSavedBeforeBooking(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockProviders := new(MockProviderReader)
	mockContacts := new(MockContactWriter)

	mockProviders.On("GetByID", mock.Anything, int64(5)).Return(&domain.Provider{
		ID:        5,
		BasePrice: 100,
		Approved:  true,
	}, nil)
	mockContacts.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	service := newTestService(mockBookings, mockProviders, new(MockUserReader), mockContacts, 1)

	_, err := service.CreateProviderBooking(context.Background(), 42, domain.RoleTourist, CreateProviderBookingRequest{
		ProviderID: 5,
		Date:       "2026-10-12",
		Adults:     2,
		Contact:    testContact(),
	})

	assert.Error(t, err)
	// booking creation never happens when the contact cannot be saved
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProviderBooking_UnapprovedProviderHidden(t *testing.T) {
	mockProviders := new(MockProviderReader)
	mockProviders.On("GetByID", mock.Anything, int64(5)).Return(&domain.Provider{
		ID:        5,
		BasePrice: 100,
		Approved:  false,
	}, nil)

	service := newTestService(new(MockBookingRepository), mockProviders, new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.CreateProviderBooking(context.Background(), 42, domain.RoleTourist, CreateProviderBookingRequest{
		ProviderID: 5,
		Date:       "2026-10-12",
		Adults:     2,
		Contact:    testContact(),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProviderBooking_NonTouristForbidden(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.CreateProviderBooking(context.Background(), 42, domain.RoleProvider, CreateProviderBookingRequest{
		ProviderID: 5,
		Date:       "2026-10-12",
		Adults:     2,
		Contact:    testContact(),
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateProviderBooking_BadDate(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.CreateProviderBooking(context.Background(), 42, domain.RoleTourist, CreateProviderBookingRequest{
		ProviderID: 5,
		Date:       "12/10/2026",
		Adults:     2,
		Contact:    testContact(),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateProductBooking_TieredPrice(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockContacts := new(MockContactWriter)

	mockContacts.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), mockContacts, 1)

	b, err := service.CreateProductBooking(context.Background(), 42, domain.RoleTourist, CreateProductBookingRequest{
		ProductType: "village-tour",
		Date:        "2026-10-12",
		Adults:      3,
		Children:    2,
		TotalPrice:  9999, // ignored: the tier table is authoritative
		Contact:     testContact(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, b.TotalPrice) // 5 heads at 24 in the 5-10 tier
	assert.Equal(t, domain.TargetProduct, b.Target.Kind)
	assert.Equal(t, "village-tour", b.Target.ProductType)
}

func TestCreateProductBooking_TierlessUsesCallerTotal(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockContacts := new(MockContactWriter)

	mockContacts.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), mockContacts, 1)

	b, err := service.CreateProductBooking(context.Background(), 42, domain.RoleTourist, CreateProductBookingRequest{
		ProductType: "ayurveda-spa-day",
		Date:        "2026-10-12",
		Adults:      2,
		TotalPrice:  180,
		Contact:     testContact(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 180.0, b.TotalPrice)
}

func TestCreateProductBooking_TierlessWithoutTotal(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.CreateProductBooking(context.Background(), 42, domain.RoleTourist, CreateProductBookingRequest{
		ProductType: "ayurveda-spa-day",
		Date:        "2026-10-12",
		Adults:      2,
		Contact:     testContact(),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateProductBooking_UnknownProduct(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.CreateProductBooking(context.Background(), 42, domain.RoleTourist, CreateProductBookingRequest{
		ProductType: "submarine-tour",
		Date:        "2026-10-12",
		Adults:      2,
		Contact:     testContact(),
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminCreate_SkipsApprovalGate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockProviders := new(MockProviderReader)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Role: domain.RoleTourist}, nil)
	mockProviders.On("GetByID", mock.Anything, int64(5)).Return(&domain.Provider{
		ID:        5,
		BasePrice: 60,
		Approved:  false, // pending listing, still bookable by an admin
	}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockProviders, mockUsers, new(MockContactWriter), 1)

	b, err := service.AdminCreate(context.Background(), AdminCreateBookingRequest{
		Kind:       "provider",
		ProviderID: 5,
		TouristID:  42,
		Date:       "2026-10-12",
		Adults:     2,
	})

	assert.NoError(t, err)
	assert.Equal(t, 120.0, b.TotalPrice)
	assert.Nil(t, b.ContactID)
}

func TestAdminCreate_UnknownTourist(t *testing.T) {
	mockUsers := new(MockUserReader)
	mockUsers.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(MockBookingRepository), new(MockProviderReader), mockUsers, new(MockContactWriter), 1)

	_, err := service.AdminCreate(context.Background(), AdminCreateBookingRequest{
		Kind:       "provider",
		ProviderID: 5,
		TouristID:  42,
		Date:       "2026-10-12",
		Adults:     2,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprove_AlwaysEndsConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	// already confirmed: approve is still a success and stays confirmed
	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{
		ID:     9,
		Status: domain.BookingConfirmed,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(9), domain.BookingConfirmed).Return(nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	b, err := service.Approve(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestApprove_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	_, err := service.Approve(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirm_IdempotentOnConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{
		ID:     9,
		Status: domain.BookingConfirmed,
	}, nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	err := service.Confirm(context.Background(), 9)

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirm_TransitionsPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(9)).Return(&domain.Booking{
		ID:     9,
		Status: domain.BookingPending,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(9), domain.BookingConfirmed).Return(nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	err := service.Confirm(context.Background(), 9)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestListMine_ProviderWithoutListing(t *testing.T) {
	mockProviders := new(MockProviderReader)
	mockProviders.On("GetByOwner", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(new(MockBookingRepository), mockProviders, new(MockUserReader), new(MockContactWriter), 1)

	list, err := service.ListMine(context.Background(), 42, domain.RoleProvider)

	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestListMine_TouristScope(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("ListByTourist", mock.Anything, int64(42)).Return([]domain.Booking{{ID: 1}}, nil)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	list, err := service.ListMine(context.Background(), 42, domain.RoleTourist)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDelete_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("Delete", mock.Anything, int64(9)).Return(gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, new(MockProviderReader), new(MockUserReader), new(MockContactWriter), 1)

	err := service.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
