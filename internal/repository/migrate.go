package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table this package maps.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&providerModel{},
		&bookingModel{},
		&reviewModel{},
		&contactModel{},
		&gatewayPaymentModel{},
	)
}
