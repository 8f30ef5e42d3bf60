package api

import (
	"context"

	"github.com/inkwell/blog-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser stores the authenticated user in the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// userFromCtx retrieves the user placed in the context by the auth guard
func userFromCtx(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}
