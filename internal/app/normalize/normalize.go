// Package normalize rewrites concrete API paths into parameterized
// templates, merges entries that collapse to the same template and
// injects the template's path parameters into each operation.
package normalize

import (
	"regexp"
	"sort"

	"github.com/har-tools/har2openapi/internal/app/openapi"
	"github.com/har-tools/har2openapi/internal/app/patterns"
)

var tokenRe = regexp.MustCompile(`\{([^}]+)\}`)

// Paths normalizes every input path and merges colliding templates.
// Template collisions are only detectable globally, so the whole path
// set must be passed in one call. Input paths are visited in sorted
// order so that collision resolution is deterministic: the first-seen
// path's operation wins per method, a later path only contributes
// methods the earlier one lacked.
func Paths(paths map[string]*openapi.PathItem) map[string]*openapi.PathItem {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Input items and operations are never mutated; the output map holds
	// copies.
	out := make(map[string]*openapi.PathItem, len(paths))
	for _, path := range keys {
		template := Template(path)
		item := paths[path]

		existing, ok := out[template]
		if !ok {
			merged := *item
			out[template] = &merged
			continue
		}
		for _, method := range openapi.Methods {
			if existing.Operation(method) == nil && item.Operation(method) != nil {
				existing.SetOperation(method, item.Operation(method))
			}
		}
	}

	for template, item := range out {
		names := paramNames(template)
		if len(names) == 0 {
			continue
		}
		for _, method := range openapi.Methods {
			if op := item.Operation(method); op != nil {
				injected := *op
				injectPathParams(&injected, names)
				item.SetOperation(method, &injected)
			}
		}
	}
	return out
}

// Template applies the ordered rewrite table to one path. Every rule is
// applied globally to the working string before the next rule runs, so a
// path may accumulate replacements from several rules. Table order is
// load-bearing; see patterns.PathRules.
//
// Each rule runs until it stops changing the string: the rule patterns
// consume the trailing separator, so back-to-back segments of the same
// family need a second pass. Termination is guaranteed because replaced
// segments no longer match any ID pattern.
func Template(path string) string {
	working := path
	for _, rule := range patterns.PathRules {
		for {
			next := rule.Pattern.ReplaceAllString(working, rule.Replacement)
			if next == working {
				break
			}
			working = next
		}
	}
	return working
}

// paramNames extracts {name} tokens left to right.
func paramNames(template string) []string {
	matches := tokenRe.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// injectPathParams prepends required string path parameters for every
// template token the operation does not already declare. Existing
// same-named parameters win.
func injectPathParams(op *openapi.Operation, names []string) {
	declared := map[string]bool{}
	for _, p := range op.Parameters {
		declared[p.Name] = true
	}

	var injected []*openapi.Parameter
	for _, name := range names {
		if declared[name] {
			continue
		}
		declared[name] = true
		injected = append(injected, &openapi.Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   &openapi.Schema{Type: "string"},
		})
	}
	op.Parameters = append(injected, op.Parameters...)
}
