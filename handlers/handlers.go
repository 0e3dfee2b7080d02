// Package handlers contains the HTTP route handlers for the immigration
// services API. Each handler is a thin translation step: parse input, run the
// store operation, serialize the raw result.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-immigration/server/internal/config"
	"github.com/nu-immigration/server/internal/store"
	"github.com/nu-immigration/server/internal/tokens"
	"github.com/nu-immigration/server/pkg/logger"
)

const (
	colServices = "services"
	colReviews  = "reviews"
	colBlogs    = "blogs"
)

// API holds the dependencies shared by all route handlers.
type API struct {
	cfg    *config.Config
	store  store.Store
	tokens *tokens.Service
}

func New(cfg *config.Config, st store.Store, ts *tokens.Service) *API {
	return &API{cfg: cfg, store: st, tokens: ts}
}

// Register wires every route onto the engine. authn is the bearer-token
// middleware applied to write/sensitive routes. Collection routes are only
// registered when a store is available; token issuance and the greeting work
// without one.
func (a *API) Register(r *gin.Engine, authn gin.HandlerFunc) {
	r.GET("/", a.Greeting)
	r.POST("/jwt", a.IssueToken)

	if a.store == nil {
		logger.Warnf("document store unavailable; collection routes not registered")
		return
	}

	r.POST("/services", a.CreateService)
	r.GET("/services", a.ListServices)
	r.GET("/threeservices", a.ThreeServices)
	r.GET("/services/:id", a.GetService)
	r.DELETE("/services/:id", authn, a.DeleteService)

	r.POST("/reviews", authn, a.CreateReview)
	r.GET("/reviews", a.ListReviews)
	r.GET("/reviews/:id", a.GetReview)
	r.PUT("/reviews/:id", a.UpsertReview)
	r.GET("/myreviews", authn, a.MyReviews)
	r.DELETE("/reviews/:id", authn, a.DeleteReview)

	r.GET("/blogs", a.ListBlogs)
}

// Greeting doubles as the liveness probe.
func (a *API) Greeting(c *gin.Context) {
	c.String(http.StatusOK, "Hello World")
}

func (a *API) storeError(c *gin.Context, op string, err error) {
	logger.Errorf("%s: store operation failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func badID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
}
