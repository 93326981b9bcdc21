package model

import "time"

// RatingModel mirrors the 'ratings' table. A user rates a store at most once
// and ratings disappear with either side.
type RatingModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:1;index:idx_ratings_user_id"`
	StoreID   int64 `gorm:"not null;uniqueIndex:idx_ratings_user_store,priority:2;index:idx_ratings_store_id"`
	Rating    int   `gorm:"not null;check:chk_ratings_range,rating >= 1 AND rating <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Store *StoreModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// AllModels lists every table in dependency order for migrations.
func AllModels() []any {
	return []any{&StoreModel{}, &UserModel{}, &RatingModel{}}
}
