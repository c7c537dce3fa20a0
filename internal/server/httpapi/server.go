// Package httpapi exposes the REST surface: routing, the authentication
// filter, the authorization policy, and the request handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/logging"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/services"
)

// UserOperations is the account surface consumed by the HTTP layer.
type UserOperations interface {
	Directory
	Login(ctx context.Context, login, password string) (*models.UserSession, error)
	Register(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryOperations is the category surface consumed by the HTTP layer.
type CategoryOperations interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	FindByName(ctx context.Context, name string) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ProductOperations is the product surface consumed by the HTTP layer.
type ProductOperations interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	FindByName(ctx context.Context, name string) ([]models.Product, error)
	FindHealthy(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Uploader grants presigned photo upload slots.
type Uploader interface {
	GrantUpload(ctx context.Context) (*services.PresignedUpload, error)
}

type Server struct {
	address    string
	logger     logging.Logger
	tokens     TokenVerifier
	users      UserOperations
	categories CategoryOperations
	products   ProductOperations
	uploads    Uploader
}

func NewServer(address string, l logging.Logger, tokens TokenVerifier,
	users UserOperations, categories CategoryOperations,
	products ProductOperations, uploads Uploader) *Server {
	return &Server{
		address:    address,
		logger:     l.With("module", "http_server"),
		tokens:     tokens,
		users:      users,
		categories: categories,
		products:   products,
		uploads:    uploads,
	}
}

// Router assembles the gin engine with the middleware pipeline and all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORS())
	r.Use(AuthFilter(s.tokens, s.users))
	r.Use(RequireIdentity())

	u := r.Group("/users")
	{
		u.POST("/login", s.login)
		u.POST("/register", s.register)
		u.PUT("/update", s.updateUser)
		u.GET("/all", s.getAllUsers)
		u.GET("/:id", s.getUserByID)
		u.DELETE("/:id", s.deleteUser)
	}

	cat := r.Group("/categories")
	{
		cat.GET("", s.getAllCategories)
		cat.GET("/:id", s.getCategoryByID)
		cat.GET("/name/:name", s.findCategoriesByName)
		cat.POST("", s.createCategory)
		cat.PUT("", s.updateCategory)
		cat.DELETE("/:id", s.deleteCategory)
	}

	p := r.Group("/products")
	{
		p.GET("", s.getAllProducts)
		p.GET("/:id", s.getProductByID)
		p.GET("/name/:name", s.findProductsByName)
		p.GET("/healthy", s.findHealthyProducts)
		p.POST("", s.createProduct)
		p.PUT("", s.updateProduct)
		p.DELETE("/:id", s.deleteProduct)
	}

	r.POST("/uploads/presign", s.presignUpload)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
