package database

import (
	"github.com/justinwb/project-ideas-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID returns a project by its ID with its author loaded
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Author").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AllByPopularity returns every project ordered by like count, most liked
// first. Ties fall back to insertion order.
func (r *ProjectRepo) AllByPopularity() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Author").Order("num_likes DESC, id ASC").Find(&projects).Error
	return projects, err
}

// AllByRecency returns every project newest first, using the ID as a proxy
// for creation order.
func (r *ProjectRepo) AllByRecency() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Author").Order("id DESC").Find(&projects).Error
	return projects, err
}

// AllByAuthor returns the projects posted by one user
func (r *ProjectRepo) AllByAuthor(authorID uint) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("author_id = ?", authorID).Order("id DESC").Find(&projects).Error
	return projects, err
}

// Like records that a user likes a project. The insert and the counter
// increment run in one transaction, and the counter moves only when the
// (user, project) pair was actually inserted, so repeated likes are a no-op.
// Returns whether a new like was recorded.
func (r *ProjectRepo) Like(userID, projectID uint) (bool, error) {
	var liked bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, ProjectID: projectID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil // pair already present
		}
		liked = true
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("num_likes", gorm.Expr("num_likes + ?", 1)).Error
	})
	return liked, err
}

// Unlike removes a user's like from a project. Removing an absent pair is a
// no-op; the counter is decremented only when a row was actually deleted.
func (r *ProjectRepo) Unlike(userID, projectID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Project{}).Where("id = ?", projectID).
			UpdateColumn("num_likes", gorm.Expr("num_likes - ?", 1)).Error
	})
}

// Pin bookmarks a project for a user. Idempotent.
func (r *ProjectRepo) Pin(userID, projectID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Pin{UserID: userID, ProjectID: projectID}).Error
}

// Unpin removes a bookmark. Removing an absent pair is a no-op.
func (r *ProjectRepo) Unpin(userID, projectID uint) error {
	return r.db.Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&models.Pin{}).Error
}

// PinnedIDs returns the IDs of every project the user has pinned
func (r *ProjectRepo) PinnedIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Pin{}).Where("user_id = ?", userID).
		Order("project_id ASC").Pluck("project_id", &ids).Error
	return ids, err
}

// LikeCount returns the cardinality of the likes relation for one project
func (r *ProjectRepo) LikeCount(projectID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Like{}).Where("project_id = ?", projectID).Count(&n).Error
	return n, err
}
