package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesa-app/mesa/internal/middleware"
	"github.com/mesa-app/mesa/internal/session"
	"github.com/mesa-app/mesa/internal/views"
)

// pages renders the site page and finishes redirects, committing the
// request session first in both cases
type pages struct {
	sessions *session.Manager
	logger   *slog.Logger
}

// render shows the home page with any pending notices
func (p *pages) render(c *gin.Context, status int) {
	sess := session.FromContext(c)
	data := views.Index{
		UserLoggedIn: sess.LoggedIn(),
		UserName:     sess.UserName(),
		Flashes:      sess.PopFlashes(),
	}

	if err := p.sessions.Commit(c.Request.Context(), c.Writer, sess); err != nil {
		middleware.Logger(c, p.logger).Error("❌ [Handler] Failed to commit session", "error", err)
	}

	c.HTML(status, views.IndexTemplate, data)
}

// redirectHome sends the visitor back to the home page. Session changes must
// be persisted for the redirect to carry them.
func (p *pages) redirectHome(c *gin.Context) {
	sess := session.FromContext(c)
	if err := p.sessions.Commit(c.Request.Context(), c.Writer, sess); err != nil {
		middleware.Logger(c, p.logger).Error("❌ [Handler] Failed to commit session", "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
