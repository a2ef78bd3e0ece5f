// Package docs serves the OpenAPI document of the API and a Swagger UI page for it.
package docs

import (
	_ "embed"
)

//go:embed swagger.json
var openAPI []byte

//go:embed swagger_ui.html
var swaggerUI []byte

// OpenAPI returns the embedded OpenAPI document
func OpenAPI() []byte {
	return openAPI
}

// SwaggerUI returns the HTML page rendering /swagger.json
func SwaggerUI() []byte {
	return swaggerUI
}
