package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) presignUpload(c *gin.Context) {
	grant, err := s.uploads.GrantUpload(c.Request.Context())
	if err != nil {
		s.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}
