package models

import "gorm.io/gorm"

// NotArchived is a GORM scope that filters soft-archived rows out of
// default queries.
func NotArchived(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", false)
}
