package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wadoud17/maktabati-pos/internal/domain/entity"
	"github.com/wadoud17/maktabati-pos/pkg/apperror"
	"github.com/wadoud17/maktabati-pos/pkg/utils"
)

// Handlers serves the API surface the client consumes. Response bodies are
// raw records and sequences, matching the external backend's contract.
type Handlers struct {
	store      *Store
	jwtManager *utils.JWTManager
}

// NewHandlers creates the handlers over the given store.
func NewHandlers(store *Store, jwtManager *utils.JWTManager) *Handlers {
	return &Handlers{store: store, jwtManager: jwtManager}
}

type signinRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn authenticates credentials and returns the identity record with a
// bearer token.
func (h *Handlers) SignIn(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, ok := h.store.Authenticate(req.Login, req.Password)
	if !ok {
		c.JSON(apperror.ErrInvalidCredentials.Code, gin.H{"message": apperror.ErrInvalidCredentials.Message})
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Login, user.Role.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not issue token"})
		return
	}
	user.Token = token

	c.JSON(http.StatusOK, user)
}

// ListProducts returns the catalog as an ordered sequence.
func (h *Handlers) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// CreateProduct appends a product to the catalog.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var p entity.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	created := h.store.AddProduct(p)
	c.JSON(http.StatusCreated, created)
}

// ListClients returns the client records as an ordered sequence.
func (h *Handlers) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Clients())
}

// Analytics returns the four ranked series for the dashboard.
func (h *Handlers) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Analytics())
}
