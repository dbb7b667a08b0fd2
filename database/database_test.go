package database

import (
	"path/filepath"
	"testing"

	"github.com/justinwb/project-ideas-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	d := New(db)
	require.NoError(t, d.AutoMigrate())
	return d
}

func addUser(t *testing.T, d Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, d.UserRepo().Add(user))
	return user
}

func addProject(t *testing.T, d Database, authorID uint, title string) *models.Project {
	t.Helper()

	project := &models.Project{
		Image:        "robot.png",
		Title:        title,
		Description:  "a description",
		Instructions: "some instructions",
		AuthorID:     authorID,
	}
	require.NoError(t, d.ProjectRepo().Add(project))
	return project
}

func addComment(t *testing.T, d Database, authorID, projectID uint, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:   content,
		AuthorID:  authorID,
		ProjectID: projectID,
	}
	require.NoError(t, d.CommentRepo().Add(comment))
	return comment
}
