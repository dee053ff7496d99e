package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProviderWriter struct {
	mock.Mock
}

func (m *MockProviderWriter) Create(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 5
	}
	return args.Error(0)
}

type MockJWT struct {
	mock.Mock
}

func (m *MockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestSignupTourist_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)

	mockUsers.On("GetByEmail", mock.Anything, "anna@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(42), "tourist").Return("token-abc", nil)

	service := NewService(mockUsers, new(MockProviderWriter), mockJWT)

	user, token, err := service.SignupTourist(context.Background(), SignupRequest{
		FullName: "Anna Weber",
		Email:    "  Anna@Example.com ",
		Password: "supersecret",
		Country:  "Germany",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, domain.RoleTourist, user.Role)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestSignupTourist_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{ID: 1}, nil)

	service := NewService(mockUsers, new(MockProviderWriter), new(MockJWT))

	_, _, err := service.SignupTourist(context.Background(), SignupRequest{
		FullName: "Anna Weber",
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupTourist_RacedUniqueViolation(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "anna@example.com").Return(nil, gorm.ErrRecordNotFound)
	// sqlite flavor of the unique index firing after the pre-check passed
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(errUniqueSQLite{})

	service := NewService(mockUsers, new(MockProviderWriter), new(MockJWT))

	_, _, err := service.SignupTourist(context.Background(), SignupRequest{
		FullName: "Anna Weber",
		Email:    "anna@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

type errUniqueSQLite struct{}

func (errUniqueSQLite) Error() string { return "UNIQUE constraint failed: users.email" }

func TestSignupProvider_CreatesUnapprovedListing(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProviders := new(MockProviderWriter)
	mockJWT := new(MockJWT)

	mockUsers.On("GetByEmail", mock.Anything, "sunil@yalasafaris.lk").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockJWT.On("GenerateToken", int64(42), "provider").Return("token-xyz", nil)
	mockProviders.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Provider) bool {
		return p.OwnerID == 42 && !p.Approved && p.Category == domain.CategorySafari
	})).Return(nil)

	service := NewService(mockUsers, mockProviders, mockJWT)

	user, provider, token, err := service.SignupProvider(context.Background(), ProviderSignupRequest{
		FullName:      "Sunil Perera",
		Email:         "sunil@yalasafaris.lk",
		Password:      "supersecret",
		ProviderName:  "Yala Jeep Safaris",
		ProviderEmail: "bookings@yalasafaris.lk",
		Category:      "safari",
		BasePrice:     12500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
	assert.Equal(t, domain.RoleProvider, user.Role)
	assert.False(t, provider.Approved)
	mockProviders.AssertExpectations(t)
}

func TestSignupProvider_UnknownCategory(t *testing.T) {
	service := NewService(new(MockUserRepository), new(MockProviderWriter), new(MockJWT))

	_, _, _, err := service.SignupProvider(context.Background(), ProviderSignupRequest{
		FullName:      "Sunil Perera",
		Email:         "sunil@yalasafaris.lk",
		Password:      "supersecret",
		ProviderName:  "Yala Jeep Safaris",
		ProviderEmail: "bookings@yalasafaris.lk",
		Category:      "skydiving",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)

	mockUsers := new(MockUserRepository)
	mockJWT := new(MockJWT)
	mockUsers.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		ID:           42,
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleTourist,
	}, nil)
	mockJWT.On("GenerateToken", int64(42), "tourist").Return("token-abc", nil)

	service := NewService(mockUsers, new(MockProviderWriter), mockJWT)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "Anna@Example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, int64(42), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.User{
		ID:           42,
		PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, new(MockProviderWriter), new(MockJWT))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "anna@example.com",
		Password: "guessing",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockUsers, new(MockProviderWriter), new(MockJWT))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
