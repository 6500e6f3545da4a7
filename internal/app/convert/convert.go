// Package convert turns a deduplicated, redacted transaction collection
// into a draft path/operation map for the path normalizer. Body schemas
// are computed with the inference engine; multiple samples of the same
// path, method and status merge their schemas.
package convert

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/inference"
	"github.com/har-tools/har2openapi/internal/app/openapi"
)

// Paths builds the draft path map. Entries are visited in input order,
// which the deduplicator has already made deterministic.
func Paths(entries []harparse.Entry) map[string]*openapi.PathItem {
	accums := map[string]*opAccum{}
	var order []string

	for _, e := range entries {
		method := strings.ToLower(e.Method)
		if !supportedMethod(method) {
			continue
		}
		path := pathOf(e.URL)
		key := method + " " + path

		acc, ok := accums[key]
		if !ok {
			acc = newOpAccum(method, path)
			accums[key] = acc
			order = append(order, key)
		}
		acc.observe(e)
	}

	paths := map[string]*openapi.PathItem{}
	for _, key := range order {
		acc := accums[key]
		item, ok := paths[acc.path]
		if !ok {
			item = &openapi.PathItem{}
			paths[acc.path] = item
		}
		item.SetOperation(acc.method, acc.operation())
	}
	return paths
}

func supportedMethod(method string) bool {
	for _, m := range openapi.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// pathOf extracts the URL path; a URL that does not parse is used raw.
func pathOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}

type opAccum struct {
	method string
	path   string

	queryOrder    []string
	queryExamples map[string]string

	requestMime  string
	requestNodes []*inference.Node

	statusOrder []int
	responses   map[int]*respAccum
}

type respAccum struct {
	mime  string
	nodes []*inference.Node
}

func newOpAccum(method, path string) *opAccum {
	return &opAccum{
		method:        method,
		path:          path,
		queryExamples: map[string]string{},
		responses:     map[int]*respAccum{},
	}
}

func (a *opAccum) observe(e harparse.Entry) {
	for _, q := range e.QueryParams {
		if _, seen := a.queryExamples[q.Name]; !seen {
			a.queryOrder = append(a.queryOrder, q.Name)
			a.queryExamples[q.Name] = q.Value
		}
	}

	if b := e.RequestBody; b != nil && b.Text != "" {
		a.requestMime = mediaType(b.MimeType)
		if node := inferBody(b); node != nil {
			a.requestNodes = append(a.requestNodes, node)
		}
	}

	resp, ok := a.responses[e.Status]
	if !ok {
		resp = &respAccum{}
		a.responses[e.Status] = resp
		a.statusOrder = append(a.statusOrder, e.Status)
	}
	if b := e.ResponseBody; b != nil && b.Text != "" {
		resp.mime = mediaType(b.MimeType)
		if node := inferBody(b); node != nil {
			resp.nodes = append(resp.nodes, node)
		}
	}
}

func (a *opAccum) operation() *openapi.Operation {
	op := &openapi.Operation{
		Summary:   fmt.Sprintf("%s %s", strings.ToUpper(a.method), a.path),
		Responses: map[string]*openapi.Response{},
	}

	for _, name := range a.queryOrder {
		op.Parameters = append(op.Parameters, &openapi.Parameter{
			Name:    name,
			In:      "query",
			Schema:  &openapi.Schema{Type: "string"},
			Example: a.queryExamples[name],
		})
	}

	if a.requestMime != "" {
		media := &openapi.MediaType{}
		if len(a.requestNodes) > 0 {
			media.Schema = SchemaFromNode(inference.Merge(a.requestNodes))
		}
		op.RequestBody = &openapi.RequestBody{
			Required: true,
			Content:  map[string]*openapi.MediaType{a.requestMime: media},
		}
	}

	sort.Ints(a.statusOrder)
	for _, status := range a.statusOrder {
		resp := a.responses[status]
		out := &openapi.Response{Description: statusDescription(status)}
		if resp.mime != "" {
			media := &openapi.MediaType{}
			if len(resp.nodes) > 0 {
				media.Schema = SchemaFromNode(inference.Merge(resp.nodes))
			}
			out.Content = map[string]*openapi.MediaType{resp.mime: media}
		}
		op.Responses[strconv.Itoa(status)] = out
	}
	if len(op.Responses) == 0 {
		op.Responses["default"] = &openapi.Response{Description: "Observed response"}
	}
	return op
}

// inferBody returns the inferred schema node for a JSON body, nil for
// non-JSON or unparsable content, which stays opaque.
func inferBody(b *harparse.Body) *inference.Node {
	if !strings.Contains(strings.ToLower(b.MimeType), "json") {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(b.Text), &v); err != nil {
		return nil
	}
	return inference.Infer(v)
}

func mediaType(mimeType string) string {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mt == "" {
		return "application/octet-stream"
	}
	return mt
}

func statusDescription(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "Observed response"
}
