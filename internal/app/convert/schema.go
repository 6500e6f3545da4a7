package convert

import (
	"github.com/har-tools/har2openapi/internal/app/inference"
	"github.com/har-tools/har2openapi/internal/app/openapi"
)

// SchemaFromNode renders an inferred node as an OpenAPI schema. Union
// nodes become anyOf; object property order is not preserved because the
// schema map is unordered, which is acceptable since field order is
// cosmetic only.
func SchemaFromNode(n *inference.Node) *openapi.Schema {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case inference.KindUnknown:
		return &openapi.Schema{}
	case inference.KindNull:
		return &openapi.Schema{Nullable: true}
	case inference.KindBoolean, inference.KindInteger, inference.KindNumber, inference.KindString:
		return &openapi.Schema{
			Type:        n.Kind.String(),
			Format:      n.Format,
			Pattern:     n.Pattern,
			Description: n.Description,
			Nullable:    n.Nullable,
		}
	case inference.KindArray:
		return &openapi.Schema{
			Type:     "array",
			Nullable: n.Nullable,
			Items:    SchemaFromNode(n.Items),
		}
	case inference.KindObject:
		out := &openapi.Schema{Type: "object", Nullable: n.Nullable}
		if len(n.Fields) > 0 {
			out.Properties = make(map[string]*openapi.Schema, len(n.Fields))
		}
		for _, f := range n.Fields {
			out.Properties[f.Name] = SchemaFromNode(f.Node)
			if f.Required {
				out.Required = append(out.Required, f.Name)
			}
		}
		return out
	case inference.KindUnion:
		out := &openapi.Schema{Nullable: n.Nullable}
		for _, m := range n.Members {
			out.AnyOf = append(out.AnyOf, SchemaFromNode(m))
		}
		return out
	default:
		return &openapi.Schema{}
	}
}
