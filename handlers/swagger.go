package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json   -> machine-readable OpenAPI JSON
func RegisterSwagger(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>nu-immigration — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the public surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "nu-immigration", "version": "v1.0.0" },
  "paths": {
    "/jwt": {
      "post": { "summary": "Issue a bearer token for the posted claims", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"}}}}}}, "responses": { "200": { "description": "token returned" } } }
    },
    "/services": {
      "get": { "summary": "List all services, newest first", "responses": { "200": { "description": "service documents" } } },
      "post": { "summary": "Create a service", "responses": { "200": { "description": "insert result" } } }
    },
    "/threeservices": {
      "get": { "summary": "List the 3 newest services", "responses": { "200": { "description": "at most 3 service documents" } } }
    },
    "/services/{id}": {
      "get": { "summary": "Get one service", "responses": { "200": { "description": "service or null" }, "400": { "description": "invalid id" } } },
      "delete": { "summary": "Delete one service (auth)", "responses": { "200": { "description": "delete result" }, "401": { "description": "missing or invalid token" } } }
    },
    "/reviews": {
      "get": { "summary": "List all reviews", "responses": { "200": { "description": "review documents" } } },
      "post": { "summary": "Create a review (auth)", "responses": { "200": { "description": "insert result" }, "401": { "description": "missing or invalid token" } } }
    },
    "/reviews/{id}": {
      "get": { "summary": "Get one review", "responses": { "200": { "description": "review or null" } } },
      "put": { "summary": "Upsert the named review fields", "responses": { "200": { "description": "update result" } } },
      "delete": { "summary": "Delete one review (auth)", "responses": { "200": { "description": "delete result" }, "401": { "description": "missing or invalid token" } } }
    },
    "/myreviews": {
      "get": { "summary": "List reviews for the email query parameter (auth)", "responses": { "200": { "description": "review documents" }, "403": { "description": "email does not match the authenticated claim" } } }
    },
    "/blogs": {
      "get": { "summary": "List all blogs", "responses": { "200": { "description": "blog documents" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
