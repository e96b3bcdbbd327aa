package database

import "gorm.io/gorm"

// OwnedBy restricts a query to records owned by userID.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// NewestFirst orders logs by date descending with a stable tie-break on insertion order.
func NewestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("date DESC").Order("created_at ASC").Order("id ASC")
	}
}

// Limit caps the number of returned rows. n <= 0 means no limit.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}
