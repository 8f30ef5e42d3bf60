package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/blog-backend/database"
	"github.com/inkwell/blog-backend/errs"
	"github.com/inkwell/blog-backend/models"
)

type blogHandler struct {
	responder Responder
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		blogRepo:  blogRepo,
	}
}

// saveDraft creates or updates a blog and forces it into the draft state.
// Drafts carry no validation: title and content may be empty. Updating a
// blog that is missing or owned by someone else reports the same 404.
func (h blogHandler) saveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		var req blogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Request body is missing JSON"))
			return
		}

		var blog *models.Blog
		created := req.ID == 0
		if created {
			blog = &models.Blog{UserID: user.ID}
		} else {
			existing, err := h.blogRepo.FindByIDAndOwner(req.ID, user.ID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if existing == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("Draft not found or not authorized to edit."))
				return
			}
			blog = existing
		}

		blog.Title = req.Title
		blog.Content = req.Content
		blog.Tags = req.Tags.Join()
		blog.Status = models.StatusDraft

		if err := h.blogRepo.Save(blog); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("Failed to save draft.", err))
			return
		}

		blog.Author = user
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		h.responder.WriteJSON(w, status, blog.Response())
	}
}

// publish creates or updates a blog and moves it to the published state.
// Title and content are required, checked before any persistence lookup.
func (h blogHandler) publish() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		var req blogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("Request body is missing JSON"))
			return
		}

		if req.Title == "" || req.Content == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Title and content are required to publish."))
			return
		}

		var blog *models.Blog
		if req.ID == 0 {
			blog = &models.Blog{UserID: user.ID}
		} else {
			existing, err := h.blogRepo.FindByIDAndOwner(req.ID, user.ID)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if existing == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("Blog not found or not authorized to publish."))
				return
			}
			blog = existing
		}

		blog.Title = req.Title
		blog.Content = req.Content
		blog.Tags = req.Tags.Join()
		blog.Status = models.StatusPublished

		if err := h.blogRepo.Save(blog); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("Failed to publish blog.", err))
			return
		}

		blog.Author = user
		h.responder.WriteJSON(w, http.StatusOK, blog.Response())
	}
}

// list returns blogs matching the optional status and user_id query
// filters, most recently updated first.
func (h blogHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.BlogFilter{Status: r.URL.Query().Get("status")}

		if userIDParam := r.URL.Query().Get("user_id"); userIDParam != "" {
			userID, err := strconv.Atoi(userIDParam)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("Invalid user_id format."))
				return
			}
			filter.UserID = &userID
		}

		blogs, err := h.blogRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		responses := make([]models.BlogResponse, 0, len(blogs))
		for _, blog := range blogs {
			responses = append(responses, blog.Response())
		}

		h.responder.WriteJSON(w, http.StatusOK, responses)
	}
}

// getByID returns any blog by id, drafts included. Visibility is not
// restricted by status or owner.
func (h blogHandler) getByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := strconv.Atoi(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found."))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found."))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, blog.Response())
	}
}

// deleteBlog removes a blog owned by the caller. Missing and foreign-owned
// blogs report the same 404.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		blogID, err := strconv.Atoi(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found or not authorized to delete."))
			return
		}

		existing, err := h.blogRepo.FindByIDAndOwner(blogID, user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog not found or not authorized to delete."))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("Failed to delete blog.", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Blog deleted successfully.")
	}
}
