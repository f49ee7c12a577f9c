package web

import (
	"io"
	"net/http"

	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/gin-gonic/gin"
)

type setThemeRequest struct {
	Mode string `json:"mode" form:"mode" binding:"required,oneof=light dark"`
}

func (s *Server) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": s.theme.Mode()})
}

func (s *Server) toggleTheme(c *gin.Context) {
	mode := s.theme.Toggle()
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

func (s *Server) setTheme(c *gin.Context) {
	var req setThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be \"light\" or \"dark\""})
		return
	}
	if err := s.theme.Set(theme.Mode(req.Mode)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": s.theme.Mode()})
}

// themeEvents streams one "theme" event now and another after every change.
func (s *Server) themeEvents(c *gin.Context) {
	changes := make(chan theme.Mode, 8)
	cancel := s.theme.Subscribe(func(m theme.Mode) {
		select {
		case changes <- m:
		default:
			// Slow reader; it will catch up on the next change.
		}
	})
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("theme", gin.H{"mode": s.theme.Mode()})
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case m := <-changes:
			c.SSEvent("theme", gin.H{"mode": m})
			return true
		case <-ctx.Done():
			return false
		case <-s.done:
			return false
		}
	})
}
