package servers

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document. The document
// is loaded once and shared, so callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			specErr = fmt.Errorf("error loading spec: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			specErr = fmt.Errorf("error validating spec: %w", err)
			return
		}
		spec = doc
	})
	return spec, specErr
}

// swaggerDoc serves the OpenAPI document to the swag registry read by the
// swagger UI handler.
type swaggerDoc struct{}

// ReadDoc returns the document as JSON, or an empty string if it cannot be loaded.
func (swaggerDoc) ReadDoc() string {
	doc, err := GetSwagger()
	if err != nil {
		return ""
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(raw)
}

var registerOnce sync.Once

// RegisterSwaggerDoc makes the document available under swag.Name.
func RegisterSwaggerDoc() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
}
