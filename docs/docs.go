// Package docs registers the OpenAPI document served under /swagger.
// Maintained by hand alongside the handler annotations; re-running
// `swag init` overwrites it.
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
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Create an account",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/dashboard/alerts/generate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Regenerate alerts",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "502": {"description": "Backend unavailable"}
                }
            }
        },
        "/api/v1/dashboard/alerts/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dismiss an alert",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/dashboard/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard overview",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/dashboard/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Reload the dashboard",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "502": {"description": "Backend unavailable"}
                }
            }
        },
        "/api/v1/dashboard/sales/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Upload weekly sales data",
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Backend unavailable"}
                }
            }
        },
        "/api/v1/inventory/medicines": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Add a medicine",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Backend unavailable"}
                }
            }
        },
        "/api/v1/inventory/medicines/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Update a medicine",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Operation already in flight"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Delete a medicine",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Operation already in flight"}
                }
            }
        },
        "/api/v1/inventory/medicines/{id}/adjust": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Adjust stock",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Operation already in flight"}
                }
            }
        },
        "/api/v1/inventory/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Live notifications",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/v1/inventory/page": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Go to a page",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/inventory/query": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Set the search text",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/inventory/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Refresh the inventory snapshot",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "502": {"description": "Backend unavailable"}
                }
            }
        },
        "/api/v1/inventory/sort": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Sort the list",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/inventory/view": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Inventory"],
                "summary": "Current inventory view",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "Console is healthy"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "Console is alive"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "Console is ready"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Pharmacy Inventory Console API",
	Description:      "Browser-facing console owning inventory view state against the pharmacy backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
