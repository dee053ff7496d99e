package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"lankatrails/internal/database"
	"lankatrails/internal/domain"
	"lankatrails/internal/repository"
)

// Seeds a development database with test accounts, a couple of listings and
// a confirmed booking so the review gate can be exercised immediately.
func main() {
	log := logrus.New()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "lankatrails.db"
	}

	db, err := database.Connect(dsn, log)
	if err != nil {
		log.WithError(err).Fatal("db connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	users := repository.NewUserRepository(db)
	providers := repository.NewProviderRepository(db)
	bookings := repository.NewBookingRepository(db)
	contacts := repository.NewContactRepository(db)

	ctx := context.Background()

	admin := seedUser(ctx, log, users, "admin@lankatrails.lk", "admin123", "Site Admin", domain.RoleAdmin)
	tourist := seedUser(ctx, log, users, "anna@example.com", "tourist123", "Anna Weber", domain.RoleTourist)
	owner := seedUser(ctx, log, users, "sunil@yalasafaris.lk", "provider123", "Sunil Perera", domain.RoleProvider)
	_ = admin

	safari := &domain.Provider{
		OwnerID:     owner.ID,
		Name:        "Yala Jeep Safaris",
		Email:       "bookings@yalasafaris.lk",
		Phone:       "+94 77 123 4567",
		Category:    domain.CategorySafari,
		Location:    "Tissamaharama",
		BasePrice:   12500,
		Description: "Half-day and full-day jeep safaris in Yala National Park.",
		Approved:    true,
	}
	if err := providers.Create(ctx, safari); err != nil {
		log.WithError(err).Fatal("seeding provider failed")
	}

	pending := &domain.Provider{
		OwnerID:     owner.ID,
		Name:        "Ella Adventure Camp",
		Email:       "hello@ellacamp.lk",
		Category:    domain.CategoryAdventure,
		Location:    "Ella",
		BasePrice:   6000,
		Description: "Hiking, zip-lining and camping around Ella Rock.",
	}
	if err := providers.Create(ctx, pending); err != nil {
		log.WithError(err).Fatal("seeding provider failed")
	}

	cs := &domain.ContactSubmission{
		Name:  tourist.FullName,
		Email: tourist.Email,
		Phone: "+49 170 555 0101",
	}
	if err := contacts.Create(ctx, cs); err != nil {
		log.WithError(err).Fatal("seeding contact failed")
	}

	b := &domain.Booking{
		TouristID:  tourist.ID,
		Target:     domain.ProviderTarget(safari.ID),
		Date:       time.Now().AddDate(0, 0, -7),
		TimeSlot:   "morning",
		Adults:     2,
		Children:   1,
		TotalPrice: 31250,
		ContactID:  &cs.ID,
		Status:     domain.BookingConfirmed,
	}
	if err := bookings.Create(ctx, b); err != nil {
		log.WithError(err).Fatal("seeding booking failed")
	}

	log.Info("seed completed")
	log.Info("admin: admin@lankatrails.lk / admin123")
	log.Info("tourist: anna@example.com / tourist123")
	log.Info("provider: sunil@yalasafaris.lk / provider123")
}

func seedUser(ctx context.Context, log *logrus.Logger, users *repository.UserRepository, email, password, name string, role domain.UserRole) *domain.User {
	if existing, err := users.GetByEmail(ctx, email); err == nil {
		return existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("hashing password failed")
	}
	u := &domain.User{
		FullName:     name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := users.Create(ctx, u); err != nil {
		log.WithError(err).WithField("email", email).Fatal("seeding user failed")
	}
	return u
}
