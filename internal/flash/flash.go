// Package flash implements one-shot notification messages carried in a cookie:
// set alongside a redirect, consumed by the next rendered page.
package flash

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Message is a transient notification with a display kind
// (success, info, warning, danger).
type Message struct {
	Kind string
	Text string
}

// Set stores a flash message for the next request.
func Set(c *gin.Context, kind, text string) {
	value := url.QueryEscape(kind + "|" + text)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// Take returns the pending flash message, if any, and clears it.
func Take(c *gin.Context) (Message, bool) {
	cookie, err := c.Request.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Message{}, false
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Message{}, false
	}

	kind, text, found := strings.Cut(decoded, "|")
	if !found {
		return Message{Kind: "info", Text: decoded}, true
	}
	return Message{Kind: kind, Text: text}, true
}
