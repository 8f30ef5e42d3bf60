package database

import (
	"gorm.io/gorm"

	"github.com/inkwell/blog-backend/models"
)

type Database struct {
	userRepo *UserRepo
	blogRepo *BlogRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo: NewUserRepo(db),
		blogRepo: NewBlogRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

// RunMigrations creates or updates the tables backing the models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Blog{})
}
