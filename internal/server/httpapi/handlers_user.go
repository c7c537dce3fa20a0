package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

type loginRequest struct {
	Login    string `json:"login" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required,notblank,min=2,max=100"`
	Login    string `json:"login" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Photo    string `json:"photo"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := s.users.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) register(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.users.Register(c.Request.Context(), &models.User{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Photo:    req.Photo,
	})
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) updateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.users.Update(c.Request.Context(), &models.User{
		ID:       req.ID,
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
		Photo:    req.Photo,
	})
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) getAllUsers(c *gin.Context) {
	users, err := s.users.GetAll(c.Request.Context())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) getUserByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		s.mapError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// mapError translates service errors to HTTP statuses. Failed logins stay
// detail-free so callers cannot probe for accounts.
func (s *Server) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, common.ErrorInvalidLoginPassword):
		c.AbortWithStatus(http.StatusUnauthorized)
	case errors.Is(err, common.ErrorLoginAlreadyExists),
		errors.Is(err, common.ErrorCategoryDoesNotExist):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err.Error())
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
