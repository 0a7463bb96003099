package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/devshelf/devshelf/internal/auth"
	"github.com/devshelf/devshelf/internal/flash"
	"github.com/devshelf/devshelf/internal/identity"
	"github.com/devshelf/devshelf/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves the landing, registration, login and profile pages.
type AuthHandler struct {
	identities *identity.Service
	sessions   *auth.SessionManager
}

func NewAuthHandler(identities *identity.Service, sessions *auth.SessionManager) *AuthHandler {
	return &AuthHandler{identities: identities, sessions: sessions}
}

func (h *AuthHandler) Index(ctx *gin.Context) {
	render(ctx, http.StatusOK, "index.html", gin.H{"Title": "Home"})
}

func (h *AuthHandler) ShowRegister(ctx *gin.Context) {
	render(ctx, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	fullName := ctx.PostForm("full_name")
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	_, err := h.identities.Register(fullName, email, password)

	switch {
	case err == nil:
		flash.Set(ctx, "success", "Registration successful! Please log in.")
		ctx.Redirect(http.StatusFound, "/login")
	case errors.Is(err, identity.ErrMissingFields):
		flash.Set(ctx, "danger", "Email and password are required.")
		ctx.Redirect(http.StatusFound, "/register")
	case errors.Is(err, identity.ErrEmailTaken):
		flash.Set(ctx, "warning", "Email already registered. Try logging in.")
		ctx.Redirect(http.StatusFound, "/login")
	default:
		log.Printf("register failed: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
	}
}

func (h *AuthHandler) ShowLogin(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	user, err := h.identities.Authenticate(email, password)

	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			flash.Set(ctx, "danger", "Invalid credentials.")
			ctx.Redirect(http.StatusFound, "/login")
			return
		}
		log.Printf("login failed: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.sessions.Issue(user.ID)

	if err != nil {
		log.Printf("failed to issue session: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	next := ctx.Query("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/dashboard"
	}
	ctx.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	flash.Set(ctx, "info", "Logged out.")
	ctx.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowProfile(ctx *gin.Context) {
	render(ctx, http.StatusOK, "profile.html", gin.H{"Title": "Profile"})
}

func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	current, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.identities.Lookup(current.ID)

	if err != nil {
		log.Printf("failed to load user %d: %v", current.ID, err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.identities.UpdateProfile(user, ctx.PostForm("full_name")); err != nil {
		log.Printf("failed to update profile: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "success", "Profile updated!")
	ctx.Redirect(http.StatusFound, "/profile")
}
