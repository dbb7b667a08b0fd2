package database

import (
	"github.com/justinwb/project-ideas-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db          *gorm.DB
	userRepo    *UserRepo
	projectRepo *ProjectRepo
	commentRepo *CommentRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:          db,
		userRepo:    NewUserRepo(db),
		projectRepo: NewProjectRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

// AutoMigrate creates or updates the schema for every table, including the
// likes and pinned join relations.
func (d Database) AutoMigrate() error {
	return d.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Comment{},
		&models.Like{},
		&models.Pin{},
	)
}
