package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell/blog-backend/errs"
	"github.com/inkwell/blog-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pool connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, NewUserRepo(db).Add(user))
	return user
}

func createTestBlog(t *testing.T, db *gorm.DB, userID int, status string) *models.Blog {
	blog := &models.Blog{
		Title:   "Test Blog",
		Content: "Test content",
		Status:  status,
		UserID:  userID,
	}
	require.NoError(t, NewBlogRepo(db).Save(blog))
	return blog
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	createTestUser(t, db, "ada")

	err := repo.Add(&models.User{Username: "ada", PasswordHash: "other"})
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestUserRepoFindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	created := createTestUser(t, db, "ada")

	found, err := repo.FindByUsername("ada")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// Exact case-sensitive match only.
	missing, err := repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepoDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepo(db)
	blogRepo := NewBlogRepo(db)

	user := createTestUser(t, db, "ada")
	other := createTestUser(t, db, "grace")
	blog := createTestBlog(t, db, user.ID, models.StatusPublished)
	kept := createTestBlog(t, db, other.ID, models.StatusPublished)

	require.NoError(t, userRepo.Delete(user.ID))

	gone, err := blogRepo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	still, err := blogRepo.FindByID(kept.ID)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, other.ID, still.UserID)
}

func TestBlogRepoFindByIDAndOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	owner := createTestUser(t, db, "ada")
	stranger := createTestUser(t, db, "grace")
	blog := createTestBlog(t, db, owner.ID, models.StatusDraft)

	found, err := repo.FindByIDAndOwner(blog.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	// Foreign ownership reports the same as absence.
	foreign, err := repo.FindByIDAndOwner(blog.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	missing, err := repo.FindByIDAndOwner(9999, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBlogRepoFindAllFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	ada := createTestUser(t, db, "ada")
	grace := createTestUser(t, db, "grace")

	createTestBlog(t, db, ada.ID, models.StatusDraft)
	published := createTestBlog(t, db, ada.ID, models.StatusPublished)
	createTestBlog(t, db, grace.ID, models.StatusPublished)

	byStatus, err := repo.FindAll(BlogFilter{Status: models.StatusPublished})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)
	for _, blog := range byStatus {
		assert.Equal(t, models.StatusPublished, blog.Status)
	}

	both, err := repo.FindAll(BlogFilter{Status: models.StatusPublished, UserID: &ada.ID})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, published.ID, both[0].ID)

	all, err := repo.FindAll(BlogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBlogRepoFindAllOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	user := createTestUser(t, db, "ada")
	first := createTestBlog(t, db, user.ID, models.StatusPublished)
	second := createTestBlog(t, db, user.ID, models.StatusPublished)

	// Touch the older blog so it becomes the most recently updated.
	time.Sleep(10 * time.Millisecond)
	first.Content = "edited"
	require.NoError(t, repo.Save(first))

	blogs, err := repo.FindAll(BlogFilter{})
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, first.ID, blogs[0].ID)
	assert.Equal(t, second.ID, blogs[1].ID)
}

func TestBlogRepoFindAllPreloadsAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	user := createTestUser(t, db, "ada")
	createTestBlog(t, db, user.ID, models.StatusPublished)

	blogs, err := repo.FindAll(BlogFilter{})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	require.NotNil(t, blogs[0].Author)
	assert.Equal(t, "ada", blogs[0].Author.Username)
}

func TestBlogRepoSaveUpdatesTimestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	user := createTestUser(t, db, "ada")
	blog := createTestBlog(t, db, user.ID, models.StatusDraft)
	createdAt := blog.CreatedAt
	updatedAt := blog.UpdatedAt

	time.Sleep(10 * time.Millisecond)
	blog.Content = "edited"
	require.NoError(t, repo.Save(blog))

	reloaded, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, createdAt.Unix(), reloaded.CreatedAt.Unix())
	assert.True(t, reloaded.UpdatedAt.After(updatedAt))
}

func TestBlogRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	user := createTestUser(t, db, "ada")
	blog := createTestBlog(t, db, user.ID, models.StatusDraft)

	require.NoError(t, repo.Delete(blog.ID))

	gone, err := repo.FindByID(blog.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
