package docgen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/har-tools/har2openapi/internal/app/openapi"
)

func TestRender(t *testing.T) {
	r := require.New(t)

	doc := openapi.Assemble(map[string]*openapi.PathItem{
		"/api/frames/{frameId}": {
			Get:    &openapi.Operation{Summary: "GET /api/frames/{frameId}", Responses: map[string]*openapi.Response{"200": {Description: "OK"}}},
			Delete: &openapi.Operation{Summary: "DELETE /api/frames/{frameId}", Responses: map[string]*openapi.Response{"204": {Description: "No Content"}}},
		},
	}, openapi.Metadata{Title: "Frames API", Version: "1.0.0"})

	var buf bytes.Buffer
	r.NoError(Render(doc, &buf))

	html := buf.String()
	r.Contains(html, "<title>Frames API 1.0.0</title>")
	r.Contains(html, "<code>/api/frames/{frameId}</code>")
	r.Contains(html, `<td class="method">get</td>`)
	r.Contains(html, `<td class="method">delete</td>`)
	r.Contains(html, `&#34;openapi&#34;: &#34;3.0.3&#34;`)
}
