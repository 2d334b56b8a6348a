package repository

import "gorm.io/gorm"

// Migrate creates or updates the record store schema, including the
// unique index on leads.email.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&leadModel{},
		&quoteModel{},
		&orderModel{},
		&projectModel{},
		&messageModel{},
	)
}
