// Package docs embeds the API documentation served by the HTTP layer.
package docs

import (
	_ "embed"
)

// OpenAPISpec holds the OpenAPI specification in YAML form.
//
//go:embed openapi.yaml
var OpenAPISpec []byte
