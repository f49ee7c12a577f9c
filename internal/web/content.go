package web

import (
	"errors"
	"net/http"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/gin-gonic/gin"
)

func (s *Server) listSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": content.Sections()})
}

func (s *Server) getSection(c *gin.Context) {
	section, ok := content.Lookup(content.SectionID(c.Param("id")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}
	c.JSON(http.StatusOK, section)
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := content.Projects(c.Query("filter"))
	if errors.Is(err, content.ErrUnknownFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "filters": content.ProjectFilters})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "filters": content.ProjectFilters})
}

func (s *Server) listSkills(c *gin.Context) {
	skills, err := content.Skills(c.Query("category"))
	if errors.Is(err, content.ErrUnknownFilter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "filters": content.SkillFilters})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "filters": content.SkillFilters})
}
