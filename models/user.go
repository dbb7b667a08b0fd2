package models

import "time"

// User represents a registered member of the site. Username and email are
// deliberately not unique: registration accepts duplicates (see DESIGN.md).
type User struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Username  string    `json:"username" db:"username" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
