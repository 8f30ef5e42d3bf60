package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell/blog-backend/errs"
	"github.com/inkwell/blog-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// BlogFilter narrows FindAll. Zero-valued fields impose no constraint; set
// fields combine with AND semantics.
type BlogFilter struct {
	Status string
	UserID *int
}

// FindAll returns blogs matching the filter, most recently updated first.
func (r *BlogRepo) FindAll(filter BlogFilter) ([]*models.Blog, error) {
	query := r.db.Preload("Author")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var blogs []*models.Blog
	if err := query.Order("updated_at DESC").Find(&blogs).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return blogs, nil
}

// FindByID returns the blog with the given id regardless of owner or
// status, or nil when absent.
func (r *BlogRepo) FindByID(id int) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Author").First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	return &blog, nil
}

// FindByIDAndOwner returns the blog only when it belongs to userID. A blog
// owned by someone else reports the same way as a missing one, so callers
// cannot tell absence from foreign ownership.
func (r *BlogRepo) FindByIDAndOwner(id, userID int) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	return &blog, nil
}

// Save persists a blog inside a transaction, inserting when the id is zero
// and updating otherwise. A failed commit rolls back and leaves prior
// state intact.
func (r *BlogRepo) Save(blog *models.Blog) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(blog).Error
	})
	if err != nil {
		return errs.NewDatabaseError("save", "blog", err)
	}
	return nil
}

// Delete removes a blog permanently.
func (r *BlogRepo) Delete(id int) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Blog{}, id).Error
	})
	if err != nil {
		return errs.NewDatabaseError("delete", "blog", err)
	}
	return nil
}
