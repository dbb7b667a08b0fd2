package database

import (
	"github.com/justinwb/project-ideas-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID returns a user by its ID
func (r *UserRepo) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the first user with the given username, exact match.
// Usernames are not unique; insertion order decides ties, as the original
// login flow did.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).Order("id ASC").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user and cascades to everything they own: their projects
// (with those projects' comments, likes and pins), their own comments, and
// their rows in the likes and pinned relations. Like counters on surviving
// projects the user had liked are decremented so the counter invariant
// holds. All of it runs in one transaction.
func (r *UserRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var projectIDs []uint
		if err := tx.Model(&models.Project{}).Where("author_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		var likedIDs []uint
		if err := tx.Model(&models.Like{}).Where("user_id = ?", id).Pluck("project_id", &likedIDs).Error; err != nil {
			return err
		}
		if len(likedIDs) > 0 {
			// only projects that survive the cascade keep a counter
			err := tx.Model(&models.Project{}).
				Where("id IN ? AND author_id <> ?", likedIDs, id).
				UpdateColumn("num_likes", gorm.Expr("num_likes - 1")).Error
			if err != nil {
				return err
			}
		}

		if len(projectIDs) > 0 {
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Pin{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", id).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Pin{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
