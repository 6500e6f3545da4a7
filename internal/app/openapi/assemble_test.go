package openapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePaths() map[string]*PathItem {
	return map[string]*PathItem{
		"/api/frames/{frameId}": {
			Get: &Operation{Responses: map[string]*Response{"200": {Description: "OK"}}},
		},
		"/api/frames": {
			Post: &Operation{Responses: map[string]*Response{"201": {Description: "Created"}}},
		},
		"/api/v1/lists": {
			Get: &Operation{Responses: map[string]*Response{"200": {Description: "OK"}}},
		},
	}
}

func TestAssembleDefaults(t *testing.T) {
	r := require.New(t)

	doc := Assemble(samplePaths(), Metadata{})

	r.Equal("3.0.3", doc.OpenAPI)
	r.Equal("Observed API", doc.Info.Title)
	r.Equal("0.1.0", doc.Info.Version)
	r.Empty(doc.Servers)
	r.Nil(doc.Components)
	r.Empty(doc.Security)
}

func TestAssembleMetadata(t *testing.T) {
	r := require.New(t)

	doc := Assemble(samplePaths(), Metadata{
		Title:     "Frames API",
		Version:   "2.0.0",
		ServerURL: "https://api.example.com",
	})

	r.Equal("Frames API", doc.Info.Title)
	r.Equal("2.0.0", doc.Info.Version)
	r.Len(doc.Servers, 1)
	r.Equal("https://api.example.com", doc.Servers[0].URL)
}

func TestAssembleTags(t *testing.T) {
	r := require.New(t)

	doc := Assemble(samplePaths(), Metadata{})

	// "api" prefixes and version segments never become tags.
	r.Equal([]Tag{{Name: "frames"}, {Name: "lists"}}, doc.Tags)
	r.Equal([]string{"frames"}, doc.Paths["/api/frames"].Post.Tags)
	r.Equal([]string{"frames"}, doc.Paths["/api/frames/{frameId}"].Get.Tags)
	r.Equal([]string{"lists"}, doc.Paths["/api/v1/lists"].Get.Tags)
}

func TestTagForPath(t *testing.T) {
	tests := []struct {
		path string
		tag  string
	}{
		{"/api/frames/{frameId}", "frames"},
		{"/api/v2/devices", "devices"},
		{"/health", "health"},
		{"/{id}/chores", "chores"},
		{"/api", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.tag, tagForPath(tt.path))
		})
	}
}

func TestAssembleSecuritySchemes(t *testing.T) {
	r := require.New(t)

	doc := Assemble(samplePaths(), Metadata{BearerAuth: true, APIKeyHeader: "X-Api-Key"})

	r.NotNil(doc.Components)
	r.Len(doc.Components.SecuritySchemes, 2)

	bearer := doc.Components.SecuritySchemes["bearerAuth"]
	r.NotNil(bearer)
	r.Equal("http", bearer.Type)
	r.Equal("bearer", bearer.Scheme)

	apiKey := doc.Components.SecuritySchemes["apiKeyAuth"]
	r.NotNil(apiKey)
	r.Equal("apiKey", apiKey.Type)
	r.Equal("X-Api-Key", apiKey.Name)
	r.Equal("header", apiKey.In)

	r.Len(doc.Security, 2)
}

func TestDocumentRendering(t *testing.T) {
	r := require.New(t)

	doc := Assemble(samplePaths(), Metadata{Title: "Frames API"})

	yamlOut, err := doc.YAML()
	r.NoError(err)
	r.Contains(string(yamlOut), "openapi: 3.0.3")
	r.Contains(string(yamlOut), "/api/frames/{frameId}")

	jsonOut, err := doc.JSON()
	r.NoError(err)
	r.Contains(string(jsonOut), `"openapi": "3.0.3"`)
	r.Contains(string(jsonOut), `"title": "Frames API"`)
}

func TestPathItemOperationAccessors(t *testing.T) {
	r := require.New(t)

	item := &PathItem{}
	op := &Operation{Summary: "PATCH /x"}

	item.SetOperation("patch", op)
	r.Same(op, item.Patch)
	r.Same(op, item.Operation("patch"))
	r.Nil(item.Operation("get"))
	r.Nil(item.Operation("purge"))

	item.SetOperation("purge", op)
	r.Nil(item.Operation("purge"))
}
