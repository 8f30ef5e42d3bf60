package api

import (
	"github.com/inkwell/blog-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler authHandler
	blogHandler blogHandler
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// blogRequest is shared by save-draft and publish. The id is optional: zero
// means create, anything else means update an existing blog.
type blogRequest struct {
	ID      int            `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Tags    models.TagList `json:"tags"`
}
