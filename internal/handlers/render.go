package handlers

import (
	"time"

	"github.com/devshelf/devshelf/internal/flash"
	"github.com/devshelf/devshelf/internal/middleware"
	"github.com/gin-gonic/gin"
)

// render executes a page template with the common view data (current user,
// pending flash message, footer year) merged in.
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if _, exists := data["User"]; !exists {
		if user, ok := middleware.CurrentUser(ctx); ok {
			data["User"] = user
		} else {
			data["User"] = nil
		}
	}

	if message, ok := flash.Take(ctx); ok {
		data["Flash"] = message
	}

	data["Year"] = time.Now().Year()

	ctx.HTML(status, name, data)
}
