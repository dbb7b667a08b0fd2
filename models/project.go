package models

import "time"

// Project represents a posted project idea. NumLikes is a denormalized
// counter kept in step with the likes relation by the repository layer.
type Project struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Image        string    `json:"image" db:"image" gorm:"type:text"` // filename under the upload directory
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text"`
	Instructions string    `json:"instructions" db:"instructions" gorm:"type:text"`
	AuthorID     uint      `json:"authorId" db:"author_id" gorm:"not null;index"`
	Author       *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	NumLikes     int       `json:"numLikes" db:"num_likes" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
