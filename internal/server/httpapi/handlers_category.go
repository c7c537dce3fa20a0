package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

type categoryRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required,notblank,min=2,max=100"`
	Description string `json:"description" binding:"required"`
	Photo       string `json:"photo"`
}

func (r *categoryRequest) model() *models.Category {
	return &models.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Photo:       r.Photo,
	}
}

func (s *Server) getAllCategories(c *gin.Context) {
	categories, err := s.categories.GetAll(c.Request.Context())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) getCategoryByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	category, err := s.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) findCategoriesByName(c *gin.Context) {
	categories, err := s.categories.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.model())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (s *Server) updateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := s.categories.Update(c.Request.Context(), req.model())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		s.mapError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
