// Package docgen renders a generated document as a standalone HTML page.
package docgen

import (
	"html/template"
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/har-tools/har2openapi/internal/app/openapi"
)

var page = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Version}}</title>
<style>
body { font-family: -apple-system, sans-serif; margin: 2rem auto; max-width: 60rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f5f5f5; }
code { font-family: ui-monospace, monospace; }
pre { background: #f5f5f5; padding: 1rem; overflow-x: auto; }
.method { text-transform: uppercase; font-weight: 600; }
</style>
</head>
<body>
<h1>{{.Title}} <small>{{.Version}}</small></h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<table>
<tr><th>Method</th><th>Path</th><th>Summary</th></tr>
{{range .Rows}}<tr><td class="method">{{.Method}}</td><td><code>{{.Path}}</code></td><td>{{.Summary}}</td></tr>
{{end}}</table>
<details>
<summary>Raw document</summary>
<pre>{{.Raw}}</pre>
</details>
</body>
</html>
`))

type row struct {
	Method  string
	Path    string
	Summary string
}

type pageData struct {
	Title       string
	Description string
	Version     string
	Rows        []row
	Raw         string
}

// Render writes a standalone HTML viewer for the document. Operations
// are listed path by path in sorted template order.
func Render(doc *openapi.Document, w io.Writer) error {
	raw, err := doc.JSON()
	if err != nil {
		return errors.Wrap(err, "render document JSON")
	}

	data := pageData{
		Title:       doc.Info.Title,
		Description: doc.Info.Description,
		Version:     doc.Info.Version,
		Raw:         string(raw),
	}
	for _, path := range sortedPaths(doc.Paths) {
		item := doc.Paths[path]
		for _, method := range openapi.Methods {
			if op := item.Operation(method); op != nil {
				data.Rows = append(data.Rows, row{Method: method, Path: path, Summary: op.Summary})
			}
		}
	}

	return errors.Wrap(page.Execute(w, data), "render document page")
}

func sortedPaths(paths map[string]*openapi.PathItem) []string {
	out := make([]string, 0, len(paths))
	for path := range paths {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
