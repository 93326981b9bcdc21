package model

import "time"

// UserModel mirrors the 'users' table. Owners point at their store; deleting
// the store detaches them.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(60);not null"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(255);not null"`
	Address      *string `gorm:"type:varchar(400)"`
	Role         string  `gorm:"type:varchar(32);not null;default:normal_user;index:idx_users_role;check:chk_users_role,role IN ('normal_user','store_owner','system_administrator')"`
	StoreID      *int64  `gorm:"index:idx_users_store_id"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
