// Package docs registers the generated OpenAPI document with swag so
// gin-swagger can serve it at /v1/swagger.
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
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/site": {
            "get": {
                "tags": ["site"],
                "summary": "Site contact details",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/listings": {
            "get": {
                "tags": ["site"],
                "summary": "Property catalog",
                "parameters": [
                    {"name": "featured", "in": "query", "type": "boolean", "description": "Only featured listings"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/content/{section}": {
            "get": {
                "tags": ["site"],
                "summary": "Static section copy",
                "parameters": [
                    {"name": "section", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/session": {
            "get": {
                "tags": ["navigation"],
                "summary": "Current navigation state",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["navigation"],
                "summary": "Sync navigation state from a shared URL",
                "parameters": [
                    {"name": "tab", "in": "query", "type": "string"},
                    {"name": "enquire", "in": "query", "type": "string"},
                    {"name": "property", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/session/navigate": {
            "post": {
                "tags": ["navigation"],
                "summary": "Activate a section tab",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/session/enquire": {
            "post": {
                "tags": ["navigation"],
                "summary": "Start a listing enquiry",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/session/reset": {
            "post": {
                "tags": ["navigation"],
                "summary": "Reset after a submitted enquiry",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/enquiry/draft": {
            "get": {
                "tags": ["enquiry"],
                "summary": "Fresh enquiry draft",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/enquiry": {
            "post": {
                "tags": ["enquiry"],
                "summary": "Submit the enquiry form",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "422": {"description": "Validation Failed"},
                    "502": {"description": "Dispatch Failed"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Himachal Land Deals API",
	Description:      "Backend for the Himachal Land Deals marketing site and enquiry workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
