package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nu-immigration/server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateService inserts the request body verbatim as a new service document.
func (a *API) CreateService(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	res, err := a.store.Collection(colServices).InsertOne(c.Request.Context(), doc)
	if err != nil {
		a.storeError(c, "create service", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListServices returns every service, newest first.
func (a *API) ListServices(c *gin.Context) {
	docs, err := a.store.Collection(colServices).Find(c.Request.Context(), bson.M{}, store.SortByIDDesc())
	if err != nil {
		a.storeError(c, "list services", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ThreeServices returns the 3 most recently added services for the home page.
func (a *API) ThreeServices(c *gin.Context) {
	docs, err := a.store.Collection(colServices).Find(c.Request.Context(), bson.M{}, store.SortByIDDesc(), store.WithLimit(3))
	if err != nil {
		a.storeError(c, "three services", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetService returns the service matching :id, or null when absent.
func (a *API) GetService(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		badID(c)
		return
	}
	doc, err := a.store.Collection(colServices).FindOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		a.storeError(c, "get service", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteService removes the service matching :id. Deleting an absent id is
// not an error; the response carries deletedCount 0.
func (a *API) DeleteService(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		badID(c)
		return
	}
	res, err := a.store.Collection(colServices).DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		a.storeError(c, "delete service", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
