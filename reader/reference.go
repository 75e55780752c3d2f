package reader

import (
	"fmt"
	"strings"

	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/models"
	"github.com/sahardevv/OpenAPI.NET/parsenode"
)

// v2Sections maps Swagger 2.0 top-level sections to component kinds.
var v2Sections = map[string]models.ReferenceType{
	"definitions":         models.ReferenceSchema,
	"parameters":          models.ReferenceParameter,
	"responses":           models.ReferenceResponse,
	"securityDefinitions": models.ReferenceSecurityScheme,
}

// ParseReference parses a $ref value of the given dialect. Internal
// references must address a component; external references keep any other
// fragment verbatim. expected fills in the type when the fragment does not
// name one.
func ParseReference(raw string, v openapi.SpecVersion, expected models.ReferenceType) (*models.Reference, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty reference")
	}
	doc, frag, hasFrag := strings.Cut(raw, "#")
	if !hasFrag && v == openapi.V2 && !strings.ContainsAny(raw, "./") {
		// Swagger 2.0 shorthand for a definition.
		return &models.Reference{Type: models.ReferenceSchema, ID: raw}, nil
	}
	if doc != "" {
		ref := &models.Reference{Type: expected, ExternalResource: doc}
		if frag == "" {
			return ref, nil
		}
		if kind, id, err := parseComponentPointer(frag, v); err == nil {
			ref.Type, ref.ID = kind, id
		} else {
			ref.Fragment = frag
		}
		return ref, nil
	}
	kind, id, err := parseComponentPointer(frag, v)
	if err != nil {
		return nil, err
	}
	return &models.Reference{Type: kind, ID: id}, nil
}

// parseComponentPointer accepts /components/{kind}/{id} for OpenAPI 3.0
// and /{section}/{id} for Swagger 2.0.
func parseComponentPointer(frag string, v openapi.SpecVersion) (models.ReferenceType, string, error) {
	parts := parsenode.SplitPointer(frag)
	switch {
	case v == openapi.V3 && len(parts) == 3 && parts[0] == "components":
		kind, ok := models.ParseReferenceType(parts[1])
		if ok && kind != models.ReferenceTag && parts[2] != "" {
			return kind, parts[2], nil
		}
	case v == openapi.V2 && len(parts) == 2:
		if kind, ok := v2Sections[parts[0]]; ok && parts[1] != "" {
			return kind, parts[1], nil
		}
	}
	return 0, "", fmt.Errorf("%q does not address a component", "#"+frag)
}
