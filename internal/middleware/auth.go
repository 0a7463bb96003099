package middleware

import (
	"net/http"

	"github.com/devshelf/devshelf/internal/auth"
	"github.com/devshelf/devshelf/internal/flash"
	"github.com/devshelf/devshelf/internal/identity"
	"github.com/gin-gonic/gin"
)

// AuthenticatedUser is the resolved identity placed on the request context.
type AuthenticatedUser struct {
	ID       uint
	FullName string
	Email    string
}

// ContextUserKey is the gin context key holding the AuthenticatedUser.
const ContextUserKey = "user"

// RequireAuth resolves the session cookie to a user and aborts to the login page
// when the request is anonymous or the session no longer maps to a user.
func RequireAuth(sessions *auth.SessionManager, identities *identity.Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(auth.CookieName)

		if err != nil || tokenString == "" {
			redirectToLogin(ctx)
			return
		}

		userID, err := sessions.Verify(tokenString)

		if err != nil {
			redirectToLogin(ctx)
			return
		}

		user, err := identities.Lookup(userID)

		if err != nil {
			redirectToLogin(ctx)
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		})
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	flash.Set(ctx, "warning", "Please log in to continue.")
	ctx.Redirect(http.StatusFound, "/login")
	ctx.Abort()
}

// CurrentUser returns the identity resolved by RequireAuth, if present.
func CurrentUser(ctx *gin.Context) (AuthenticatedUser, bool) {
	value, exists := ctx.Get(ContextUserKey)

	if !exists {
		return AuthenticatedUser{}, false
	}

	user, ok := value.(AuthenticatedUser)

	return user, ok
}
