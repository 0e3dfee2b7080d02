package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueToken signs the request body as token claims and returns the token.
// The body is an arbitrary JSON object; the identity convention is that it
// carries at least an "email" field, which protected routes check against.
func (a *API) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := a.tokens.Issue(claims)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
