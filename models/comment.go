package models

import "time"

// Comment belongs to exactly one project and one author.
type Comment struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"authorId" db:"author_id" gorm:"not null;index"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	ProjectID uint      `json:"projectId" db:"project_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
