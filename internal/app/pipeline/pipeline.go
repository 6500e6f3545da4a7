// Package pipeline runs the full conversion: dedup, redaction, draft
// conversion, path normalization and document assembly.
package pipeline

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/har-tools/har2openapi/internal/app/convert"
	"github.com/har-tools/har2openapi/internal/app/dedup"
	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/normalize"
	"github.com/har-tools/har2openapi/internal/app/openapi"
	"github.com/har-tools/har2openapi/internal/app/redact"
)

// Options control one pipeline run.
type Options struct {
	Metadata openapi.Metadata
	Rules    []redact.Rule
}

// Build produces a document from one or more parsed capture collections.
// The deduplicator must see the full combined set before anything else
// runs, so collections are merged first.
func Build(collections [][]harparse.Entry, opts Options) (*openapi.Document, error) {
	entries, err := dedup.Merge(collections)
	if err != nil {
		return nil, err
	}

	sanitized := make([]harparse.Entry, 0, len(entries))
	for _, e := range entries {
		s := redact.Transaction(e)
		if len(opts.Rules) > 0 {
			applyCustomRules(&s, opts.Rules)
		}
		sanitized = append(sanitized, s)
	}

	paths := convert.Paths(sanitized)
	normalized := normalize.Paths(paths)
	log.Infof("converted %d entries into %d path templates", len(sanitized), len(normalized))

	return openapi.Assemble(normalized, opts.Metadata), nil
}

func applyCustomRules(e *harparse.Entry, rules []redact.Rule) {
	if b := e.RequestBody; b != nil && isJSON(b.MimeType) {
		b.Text = redact.ApplyRules(b.Text, rules)
	}
	if b := e.ResponseBody; b != nil && isJSON(b.MimeType) {
		b.Text = redact.ApplyRules(b.Text, rules)
	}
}

func isJSON(mimeType string) bool {
	return strings.Contains(strings.ToLower(mimeType), "json")
}
