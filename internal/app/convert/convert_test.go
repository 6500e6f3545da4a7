package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/inference"
)

func jsonEntry(method, url string, status int, reqBody, respBody string) harparse.Entry {
	e := harparse.Entry{Method: method, URL: url, Status: status}
	if reqBody != "" {
		e.RequestBody = &harparse.Body{MimeType: "application/json; charset=utf-8", Text: reqBody, Size: int64(len(reqBody))}
	}
	if respBody != "" {
		e.ResponseBody = &harparse.Body{MimeType: "application/json", Text: respBody, Size: int64(len(respBody))}
	}
	return e
}

func TestPathsBuildsOperations(t *testing.T) {
	r := require.New(t)

	entries := []harparse.Entry{
		jsonEntry("GET", "https://api.example.com/api/frames?page=2", 200, "", `{"items":[]}`),
		jsonEntry("POST", "https://api.example.com/api/frames", 201, `{"name":"x"}`, `{"id":1}`),
	}
	entries[0].QueryParams = []harparse.QueryParam{{Name: "page", Value: "2"}}

	paths := Paths(entries)
	r.Len(paths, 1)

	item := paths["/api/frames"]
	r.NotNil(item)
	r.NotNil(item.Get)
	r.NotNil(item.Post)

	r.Equal("GET /api/frames", item.Get.Summary)
	r.Len(item.Get.Parameters, 1)
	r.Equal("page", item.Get.Parameters[0].Name)
	r.Equal("query", item.Get.Parameters[0].In)

	resp := item.Get.Responses["200"]
	r.NotNil(resp)
	r.Equal("OK", resp.Description)
	schema := resp.Content["application/json"].Schema
	r.Equal("object", schema.Type)
	r.Equal("array", schema.Properties["items"].Type)

	body := item.Post.RequestBody
	r.NotNil(body)
	r.True(body.Required)
	r.Equal("object", body.Content["application/json"].Schema.Type)
}

func TestPathsMergesSamplesOfSameOperation(t *testing.T) {
	r := require.New(t)

	entries := []harparse.Entry{
		jsonEntry("GET", "https://api.example.com/api/lists/1", 200, "", `{"a":1}`),
		jsonEntry("GET", "https://api.example.com/api/lists/1", 404, "", `{"error":"missing"}`),
	}

	paths := Paths(entries)
	item := paths["/api/lists/1"]
	r.NotNil(item)
	r.Len(item.Get.Responses, 2)
	r.NotNil(item.Get.Responses["200"])
	r.NotNil(item.Get.Responses["404"])
}

func TestPathsNonJSONBodyStaysOpaque(t *testing.T) {
	r := require.New(t)

	e := harparse.Entry{
		Method:       "GET",
		URL:          "https://api.example.com/report",
		Status:       200,
		ResponseBody: &harparse.Body{MimeType: "text/csv", Text: "a,b\n1,2", Size: 7},
	}

	paths := Paths([]harparse.Entry{e})
	resp := paths["/report"].Get.Responses["200"]
	media := resp.Content["text/csv"]
	r.NotNil(media)
	r.Nil(media.Schema)
}

func TestPathsSkipsUnsupportedMethods(t *testing.T) {
	r := require.New(t)

	paths := Paths([]harparse.Entry{{Method: "PURGE", URL: "https://x/a", Status: 200}})
	r.Empty(paths)
}

func TestSchemaFromNodeObject(t *testing.T) {
	r := require.New(t)

	node := inference.Infer(map[string]interface{}{
		"id":   "3fa85f64-5717-4562-b3fc-2c963f66afa6",
		"tags": []interface{}{"a"},
	})
	schema := SchemaFromNode(node)

	r.Equal("object", schema.Type)
	r.Equal("uuid", schema.Properties["id"].Format)
	r.Equal("array", schema.Properties["tags"].Type)
	r.Equal("string", schema.Properties["tags"].Items.Type)
	r.ElementsMatch([]string{"id", "tags"}, schema.Required)
}

func TestSchemaFromNodeUnion(t *testing.T) {
	r := require.New(t)

	node := inference.Merge([]*inference.Node{inference.Infer("x"), inference.Infer(float64(1))})
	schema := SchemaFromNode(node)

	r.Empty(schema.Type)
	r.Len(schema.AnyOf, 2)
}
