package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>amigdala-cms — Swagger</title>
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

// Minimal OpenAPI document describing the public and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "amigdala-cms", "version": "v0.1.0" },
  "paths": {
    "/api/content": {
      "get": { "summary": "Fetch one section (?section=) or all sections", "responses": { "200": { "description": "section document(s)" }, "404": { "description": "unknown section" } } },
      "post": { "summary": "Upsert a full section document (admin)", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"section":{"type":"string"},"content":{"type":"object"}}}}}}, "responses": { "200": { "description": "saved" }, "400": { "description": "validation failed" } } }
    },
    "/api/render": {
      "get": { "summary": "Ordered render-ready section view-models", "responses": { "200": { "description": "sections in display order" } } }
    },
    "/api/media": {
      "get": { "summary": "List media items, newest first", "responses": { "200": { "description": "media items" } } },
      "post": { "summary": "Upload an image (admin, multipart 'file')", "responses": { "201": { "description": "stored item" }, "400": { "description": "no-file / invalid-type" }, "413": { "description": "too-large" } } }
    },
    "/api/media/{id}": {
      "delete": { "summary": "Delete a media item (admin)", "responses": { "200": { "description": "deleted" }, "404": { "description": "unknown id" } } }
    },
    "/api/image": {
      "get": { "summary": "Stream an uploaded asset by stored path", "responses": { "200": { "description": "image bytes" }, "403": { "description": "path outside uploads" }, "404": { "description": "missing file" } } }
    },
    "/api/settings": {
      "get": { "summary": "Site settings singleton", "responses": { "200": { "description": "settings document" } } },
      "post": { "summary": "Replace the settings singleton (admin)", "responses": { "200": { "description": "saved" } } }
    },
    "/auth/login": {
      "post": { "summary": "Admin password login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "tokens returned" }, "401": { "description": "invalid credentials" } } }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
