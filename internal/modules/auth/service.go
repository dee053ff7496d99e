package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lankatrails/internal/domain"
)

type Service struct {
	users     UserRepository
	providers ProviderWriter
	jwt       jwtService
}

func NewService(users UserRepository, providers ProviderWriter, jwt jwtService) *Service {
	return &Service{users: users, providers: providers, jwt: jwt}
}

func (s *Service) SignupTourist(ctx context.Context, req SignupRequest) (*domain.User, string, error) {
	user := &domain.User{
		FullName: req.FullName,
		Email:    normalizeEmail(req.Email),
		Country:  req.Country,
		Role:     domain.RoleTourist,
	}

	token, err := s.createUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) SignupProvider(ctx context.Context, req ProviderSignupRequest) (*domain.User, *domain.Provider, string, error) {
	category := domain.ProviderCategory(req.Category)
	if !category.Valid() {
		return nil, nil, "", ErrValidation
	}

	user := &domain.User{
		FullName: req.FullName,
		Email:    normalizeEmail(req.Email),
		Country:  req.Country,
		Role:     domain.RoleProvider,
	}

	token, err := s.createUser(ctx, user, req.Password)
	if err != nil {
		return nil, nil, "", err
	}

	// new listings start unapproved and stay off public surfaces until an
	// admin clears them
	provider := &domain.Provider{
		OwnerID:     user.ID,
		Name:        req.ProviderName,
		Email:       normalizeEmail(req.ProviderEmail),
		Phone:       req.Phone,
		Category:    category,
		Location:    req.Location,
		BasePrice:   req.BasePrice,
		Description: req.Description,
		Approved:    false,
	}
	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, nil, "", err
	}

	return user, provider, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) createUser(ctx context.Context, user *domain.User, password string) (string, error) {
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return "", ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Create(ctx, user); err != nil {
		// the pre-check races with concurrent signups; the unique index wins
		if isUniqueViolation(err) {
			return "", ErrEmailAlreadyExists
		}
		return "", err
	}

	return s.jwt.GenerateToken(user.ID, string(user.Role))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
