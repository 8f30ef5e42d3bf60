package models

import "time"

// User owns zero or more blogs. The password hash never leaves the server.
type User struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(200);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	Blogs []Blog `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserResponse is the public transport shape of a user.
type UserResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
