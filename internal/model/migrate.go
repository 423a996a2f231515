package model

import "gorm.io/gorm"

// AutoMigrate keeps the schema current for dev backends; production postgres
// deployments run the SQL migrations in migrations/ instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookingModel{},
		&PortfolioItemModel{},
		&CreatorModel{},
		&TestimonialModel{},
		&VideoContentModel{},
	)
}
