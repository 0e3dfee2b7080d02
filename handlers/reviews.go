package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-immigration/server/internal/store"
	"github.com/nu-immigration/server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
)

// reviewFields are the fields a review upsert replaces.
var reviewFields = []string{"name", "email", "photoURL", "rating", "time", "realDate", "realTime", "text"}

// CreateReview inserts the request body verbatim as a new review document.
func (a *API) CreateReview(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	res, err := a.store.Collection(colReviews).InsertOne(c.Request.Context(), doc)
	if err != nil {
		a.storeError(c, "create review", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReviews returns every review.
func (a *API) ListReviews(c *gin.Context) {
	docs, err := a.store.Collection(colReviews).Find(c.Request.Context(), bson.M{})
	if err != nil {
		a.storeError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetReview returns the review matching :id, or null when absent.
func (a *API) GetReview(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		badID(c)
		return
	}
	doc, err := a.store.Collection(colReviews).FindOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		a.storeError(c, "get review", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpsertReview replaces the named review fields at :id, creating the document
// when absent.
func (a *API) UpsertReview(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		badID(c)
		return
	}
	var body bson.M
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	set := bson.M{}
	for _, f := range reviewFields {
		set[f] = body[f]
	}
	res, err := a.store.Collection(colReviews).UpdateOne(c.Request.Context(), bson.M{"_id": id}, bson.M{"$set": set}, true)
	if err != nil {
		a.storeError(c, "upsert review", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// MyReviews returns the reviews matching the email query parameter. When the
// requested email differs from the authenticated claim a 403 message is sent
// first; the query still runs with the caller-supplied filter (the historical
// contract of this route), but its result is only logged, never written.
func (a *API) MyReviews(c *gin.Context) {
	claims, _ := c.MustGet("claims").(map[string]interface{})
	email := c.Query("email")

	mismatch := false
	if claimEmail, _ := claims["email"].(string); claimEmail != email {
		mismatch = true
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized access"})
	}

	docs, err := a.store.Collection(colReviews).Find(c.Request.Context(), bson.M{"email": email})
	if err != nil {
		if mismatch {
			logger.Errorf("my reviews: store operation failed after ownership mismatch: %v", err)
			return
		}
		a.storeError(c, "my reviews", err)
		return
	}
	if mismatch {
		logger.Debugf("my reviews: ownership mismatch for %q; discarding %d documents", email, len(docs))
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DeleteReview removes the review matching :id.
func (a *API) DeleteReview(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		badID(c)
		return
	}
	res, err := a.store.Collection(colReviews).DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		a.storeError(c, "delete review", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
