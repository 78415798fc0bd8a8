package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OpenAPI specification served at /openapi.json
const openapiJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "acervo API",
    "version": "0.1.0"
  },
  "servers": [ { "url": "/" } ],
  "tags": [
    {"name": "auth", "description": "Authentication"},
    {"name": "users", "description": "User Management"},
    {"name": "books", "description": "Books"},
    {"name": "paper", "description": "Papers"},
    {"name": "finalProject", "description": "Final Projects"},
    {"name": "ops", "description": "Operations"}
  ],
  "components": {
    "securitySchemes": {
      "bearerAuth": {
        "type": "http",
        "scheme": "bearer",
        "bearerFormat": "JWT"
      }
    }
  },
  "paths": {
    "/v1/auth/authenticate": {
      "post": {"summary": "Authenticate and obtain a token","tags": ["auth"],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users/register": {
      "post": {"summary": "Register a user","tags": ["users"],"responses": {"201": {"description": "OK"}}}
    },
    "/v1/users/edit": {
      "put": {"summary": "Update the calling user","tags": ["users"],"security": [{"bearerAuth": []}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users/delete": {
      "delete": {"summary": "Remove the calling user","tags": ["users"],"security": [{"bearerAuth": []}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users/find": {
      "get": {"summary": "Get the calling user","tags": ["users"],"security": [{"bearerAuth": []}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users/find-all": {
      "get": {"summary": "List users","tags": ["users"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users": {
      "get": {"summary": "List users","tags": ["users"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/users/{id}": {
      "get": {"summary": "Get user by ID","tags": ["users"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/register": {
      "post": {"summary": "Register a book","tags": ["books"],"security": [{"bearerAuth": []}],"responses": {"201": {"description": "OK"}}}
    },
    "/v1/books/edit/{isbn}": {
      "put": {"summary": "Update a book by ISBN","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"isbn","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/delete/{isbn}": {
      "delete": {"summary": "Remove a book by ISBN","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"isbn","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/find-by-isbn/{isbn}": {
      "get": {"summary": "Get book by ISBN","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"isbn","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/find-by-name/{name}": {
      "get": {"summary": "Find books by title","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"name","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/find-all": {
      "get": {"summary": "List books","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books": {
      "get": {"summary": "List books","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/books/{id}": {
      "get": {"summary": "Get book by ID","tags": ["books"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/register": {
      "post": {"summary": "Register a paper","tags": ["paper"],"security": [{"bearerAuth": []}],"responses": {"201": {"description": "OK"}}}
    },
    "/v1/paper/edit/{id}": {
      "put": {"summary": "Update a paper","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/delete/{id}": {
      "delete": {"summary": "Remove a paper","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/find-by-id/{id}": {
      "get": {"summary": "Get paper by ID","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/find-by-name/{name}": {
      "get": {"summary": "Find papers by title","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"name","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/find-all": {
      "get": {"summary": "List papers","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper": {
      "get": {"summary": "List papers","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/paper/{id}": {
      "get": {"summary": "Get paper by ID","tags": ["paper"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/register": {
      "post": {"summary": "Register a final project","tags": ["finalProject"],"security": [{"bearerAuth": []}],"responses": {"201": {"description": "OK"}}}
    },
    "/v1/finalProject/edit/{id}": {
      "put": {"summary": "Update a final project","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/delete/{id}": {
      "delete": {"summary": "Remove a final project","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/find-by-id/{id}": {
      "get": {"summary": "Get final project by ID","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/find-by-name/{name}": {
      "get": {"summary": "Find final projects by title","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"name","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/find-all": {
      "get": {"summary": "List final projects","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject": {
      "get": {"summary": "List final projects","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"page","in":"query","schema":{"type":"integer","minimum":0}},{"name":"size","in":"query","schema":{"type":"integer","maximum":100}},{"name":"sort","in":"query","schema":{"type":"array","items":{"type":"string"}},"explode":true}],"responses": {"200": {"description": "OK"}}}
    },
    "/v1/finalProject/{id}": {
      "get": {"summary": "Get final project by ID","tags": ["finalProject"],"security": [{"bearerAuth": []}],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"integer"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/healthz": {
      "get": {"summary": "Liveness and database check","tags": ["ops"],"responses": {"200": {"description": "OK"},"503": {"description": "Database unavailable"}}}
    }
  }
}`

// RegisterRoutes wires the API documentation endpoints into the Gin engine.
// - GET /openapi.json: OpenAPI 3.0 spec
// - GET /docs: Swagger UI (via CDN) loading /openapi.json
func RegisterRoutes(r *gin.Engine) {
	// convenience: redirect root to docs
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/docs") })
	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(openapiJSON))
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}

// Simple Swagger-UI page using CDN assets, pointing to /openapi.json
const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <title>acervo API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
 </body>
</html>`
