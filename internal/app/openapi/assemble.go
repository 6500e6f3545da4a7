package openapi

import (
	"sort"
	"strings"
)

// Metadata is the externally supplied document metadata.
type Metadata struct {
	Title       string
	Description string
	Version     string
	ServerURL   string

	// BearerAuth and APIKeyHeader control the emitted security schemes.
	// APIKeyHeader names the header for an apiKey scheme; empty disables it.
	BearerAuth   bool
	APIKeyHeader string
}

// Assemble builds a complete document from a normalized path map and the
// supplied metadata. Tags are derived from the first meaningful path
// segment of each template and attached to its operations.
func Assemble(paths map[string]*PathItem, meta Metadata) *Document {
	doc := &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       meta.Title,
			Description: meta.Description,
			Version:     meta.Version,
		},
		Paths: paths,
	}
	if doc.Info.Title == "" {
		doc.Info.Title = "Observed API"
	}
	if doc.Info.Version == "" {
		doc.Info.Version = "0.1.0"
	}
	if meta.ServerURL != "" {
		doc.Servers = []Server{{URL: meta.ServerURL, Description: "Observed server"}}
	}

	applyTags(doc)
	applySecurity(doc, meta)
	return doc
}

func applyTags(doc *Document) {
	seen := map[string]bool{}
	var names []string

	var templates []string
	for template := range doc.Paths {
		templates = append(templates, template)
	}
	sort.Strings(templates)

	for _, template := range templates {
		tag := tagForPath(template)
		if tag == "" {
			continue
		}
		if !seen[tag] {
			seen[tag] = true
			names = append(names, tag)
		}
		item := doc.Paths[template]
		for _, method := range Methods {
			if op := item.Operation(method); op != nil && len(op.Tags) == 0 {
				op.Tags = []string{tag}
			}
		}
	}

	sort.Strings(names)
	for _, name := range names {
		doc.Tags = append(doc.Tags, Tag{Name: name})
	}
}

// tagForPath picks the first path segment that is neither an "api"
// prefix, a version segment nor a parameter.
func tagForPath(template string) string {
	for _, seg := range strings.Split(strings.Trim(template, "/"), "/") {
		if seg == "" || seg == "api" || strings.HasPrefix(seg, "{") {
			continue
		}
		if len(seg) >= 2 && seg[0] == 'v' && seg[1] >= '0' && seg[1] <= '9' {
			continue
		}
		return seg
	}
	return ""
}

func applySecurity(doc *Document, meta Metadata) {
	schemes := map[string]*SecurityScheme{}
	if meta.BearerAuth {
		schemes["bearerAuth"] = &SecurityScheme{Type: "http", Scheme: "bearer", BearerFormat: "JWT"}
		doc.Security = append(doc.Security, map[string][]string{"bearerAuth": {}})
	}
	if meta.APIKeyHeader != "" {
		schemes["apiKeyAuth"] = &SecurityScheme{Type: "apiKey", Name: meta.APIKeyHeader, In: "header"}
		doc.Security = append(doc.Security, map[string][]string{"apiKeyAuth": {}})
	}
	if len(schemes) > 0 {
		doc.Components = &Components{SecuritySchemes: schemes}
	}
}
