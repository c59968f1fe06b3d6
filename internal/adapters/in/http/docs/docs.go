// Package docs registers the OpenAPI document with swag so that echo-swagger
// can serve it under /swagger/doc.json.
package docs

import (
	"drones/api"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	return string(api.OpenAPI)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
