// Package docs holds the Swagger 2.0 document served at /swagger/*any.
// Regenerate with `swag init -g cmd/games-api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category by slug",
                "parameters": [
                    {"type": "string", "description": "Category slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reviews/{review_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Get a review by id",
                "parameters": [
                    {"type": "string", "description": "Positive integer review id", "name": "review_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ReviewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/reviews/{review_id}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List comments on a review, newest first",
                "parameters": [
                    {"type": "string", "description": "Positive integer review id", "name": "review_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CommentsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UsersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"msg": {"type": "string", "example": "review_id not found"}}
        },
        "handlers.CategoryView": {
            "type": "object",
            "properties": {
                "slug": {"type": "string", "example": "euro game"},
                "description": {"type": "string", "example": "Abstact games that involve little luck"}
            }
        },
        "handlers.ReviewView": {
            "type": "object",
            "properties": {
                "review_id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "Agricola"},
                "designer": {"type": "string", "example": "Uwe Rosenberg"},
                "owner": {"type": "string", "example": "mallionaire"},
                "review_img_url": {"type": "string"},
                "review_body": {"type": "string", "example": "Farmyard fun!"},
                "category": {"type": "string", "example": "euro game"},
                "created_at": {"type": "string", "example": "2021-01-18T10:00:20.514Z"},
                "votes": {"type": "integer", "example": 1}
            }
        },
        "handlers.CommentView": {
            "type": "object",
            "properties": {
                "comment_id": {"type": "integer"},
                "body": {"type": "string"},
                "review_id": {"type": "integer"},
                "author": {"type": "string"},
                "votes": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "handlers.UserView": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "name": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {"categories": {"type": "array", "items": {"$ref": "#/definitions/handlers.CategoryView"}}}
        },
        "handlers.CategoryResponse": {
            "type": "object",
            "properties": {"category": {"$ref": "#/definitions/handlers.CategoryView"}}
        },
        "handlers.ReviewResponse": {
            "type": "object",
            "properties": {"review": {"$ref": "#/definitions/handlers.ReviewView"}}
        },
        "handlers.CommentsResponse": {
            "type": "object",
            "properties": {"comments": {"type": "array", "items": {"$ref": "#/definitions/handlers.CommentView"}}}
        },
        "handlers.UsersResponse": {
            "type": "object",
            "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/handlers.UserView"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Board Game Reviews API",
	Description:      "Read-only lookups over board-game categories, reviews, comments and users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
