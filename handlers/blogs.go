package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListBlogs returns every blog document. Blogs are read-only through this API.
func (a *API) ListBlogs(c *gin.Context) {
	docs, err := a.store.Collection(colBlogs).Find(c.Request.Context(), bson.M{})
	if err != nil {
		a.storeError(c, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
