package database

import (
	"github.com/justinwb/project-ideas-backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID returns a comment by its ID
func (r *CommentRepo) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByProject returns all comments on a project, oldest first, with their
// authors loaded for display.
func (r *CommentRepo) FindByProject(projectID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("Author").Where("project_id = ?", projectID).
		Order("id ASC").Find(&comments).Error
	return comments, err
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
