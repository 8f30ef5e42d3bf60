package models

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Blog is a post owned by exactly one user. Tags are stored comma-joined;
// the transport representation is a list (see TagList).
type Blog struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null;default:''"`
	Content   string    `json:"content" gorm:"type:text;not null;default:''"`
	Tags      string    `json:"-" gorm:"type:varchar(200)"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	UserID    int       `json:"user_id" gorm:"not null;index"`

	Author *User `json:"-" gorm:"foreignKey:UserID"`
}

// BlogResponse is the transport shape of a blog, with the author resolved
// to a username by an explicit lookup rather than an implicit relation.
type BlogResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Tags           []string `json:"tags"`
	Status         string   `json:"status"`
	UserID         int      `json:"user_id"`
	AuthorUsername string   `json:"author_username"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// Response builds the transport shape. The author must have been loaded
// alongside the blog; a missing author renders as "Unknown".
func (b *Blog) Response() BlogResponse {
	author := "Unknown"
	if b.Author != nil {
		author = b.Author.Username
	}
	return BlogResponse{
		ID:             b.ID,
		Title:          b.Title,
		Content:        b.Content,
		Tags:           SplitTags(b.Tags),
		Status:         b.Status,
		UserID:         b.UserID,
		AuthorUsername: author,
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
