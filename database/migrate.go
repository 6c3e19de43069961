package database

import (
	"gorm.io/gorm"

	"repuestos-web/models"
)

// AutoMigrate idempotently ensures the repuestos table matches the Part
// schema. Safe to run on every process start.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Part{})
}
