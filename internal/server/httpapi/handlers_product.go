package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

type productRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" binding:"required,notblank,min=2,max=100"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	Price       float64 `json:"price" binding:"min=0"`
	Healthy     bool    `json:"healthy"`
	CategoryID  int64   `json:"category_id" binding:"required"`
}

func (r *productRequest) model() *models.Product {
	return &models.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		Price:       r.Price,
		Healthy:     r.Healthy,
		CategoryID:  r.CategoryID,
	}
}

func (s *Server) getAllProducts(c *gin.Context) {
	products, err := s.products.GetAll(c.Request.Context())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProductByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	product, err := s.products.GetByID(c.Request.Context(), id)
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) findProductsByName(c *gin.Context) {
	products, err := s.products.FindByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) findHealthyProducts(c *gin.Context) {
	products, err := s.products.FindHealthy(c.Request.Context())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// createProduct records the authenticated account as the product owner.
func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.model()
	if user, ok := CurrentUser(c); ok {
		product.UserID = user.ID
	}

	created, err := s.products.Create(c.Request.Context(), product)
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.products.Update(c.Request.Context(), req.model())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := s.products.Delete(c.Request.Context(), id); err != nil {
		s.mapError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
