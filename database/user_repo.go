package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell/blog-backend/errs"
	"github.com/inkwell/blog-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user. A duplicate username surfaces as a conflict.
func (r *UserRepo) Add(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return errs.NewDatabaseError("create", "user", err)
	}
	return nil
}

// FindByUsername returns the user with the exact (case-sensitive) username,
// or nil when no such user exists.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Delete removes a user together with every blog they own.
func (r *UserRepo) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Blog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return errs.NewDatabaseError("delete", "user", err)
	}
	return nil
}
