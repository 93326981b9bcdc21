// Package model holds the GORM mappings of the database tables.
package model

import "time"

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_stores_email"`
	Address   *string `gorm:"type:varchar(400)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
