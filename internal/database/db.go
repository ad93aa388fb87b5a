package database

import (
	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM. Automigrate
// creates the receipts table and its unique index on loading_slip_no, which
// is the enforcement point for slip number uniqueness.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Receipt{}); err != nil {
		return nil, err
	}

	return db, nil
}
