package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPI(t *testing.T) {
	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(OpenAPI(), &doc))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{"/register", "/auth/register", "/v1/customers", "/v1/payments/{id}", "/v1/movies/{uid}"} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Paths["/v1/movies/{uid}"], "patch")
}

func TestSwaggerUI(t *testing.T) {
	assert.Contains(t, string(SwaggerUI()), "/swagger.json")
}
