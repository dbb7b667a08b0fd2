package models

import "time"

// Like is a (user, project) row in the likes relation. The composite
// primary key guarantees each pair appears at most once.
type Like struct {
	UserID    uint      `json:"userId" db:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ProjectID uint      `json:"projectId" db:"project_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (Like) TableName() string { return "likes" }

// Pin is a user-curated bookmark of a project, distinct from a like.
type Pin struct {
	UserID    uint      `json:"userId" db:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ProjectID uint      `json:"projectId" db:"project_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (Pin) TableName() string { return "pinned" }
