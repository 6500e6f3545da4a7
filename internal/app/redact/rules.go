package redact

import (
	"encoding/json"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/sjson"

	"github.com/har-tools/har2openapi/internal/app/patterns"
)

// Rule is a user-supplied redaction override: a JSON path addressing a
// body location plus the placeholder category substituted there. Rules
// run after the built-in body walk.
type Rule struct {
	Path     string `json:"path"`
	Category string `json:"category"`
}

// LoadRules parses a JSON array of rules.
func LoadRules(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "unable to parse redaction rules")
	}
	for _, r := range rules {
		if !strings.HasPrefix(r.Path, "$.") {
			return nil, errors.Errorf("redaction rule path %q must start with $.", r.Path)
		}
	}
	return rules, nil
}

// ApplyRules applies custom rules to a JSON body. A rule only fires when
// its path resolves against the decoded body; failures are soft and leave
// the body untouched.
func ApplyRules(text string, rules []Rule) string {
	if len(rules) == 0 {
		return text
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return text
	}

	for _, rule := range rules {
		if _, err := jsonpath.Get(rule.Path, decoded); err != nil {
			continue
		}
		updated, err := sjson.Set(text, sjsonPath(rule.Path), patterns.PlaceholderForCategory(rule.Category))
		if err != nil {
			log.Warnf("unable to apply redaction rule at %s: %s", rule.Path, err)
			continue
		}
		text = updated
	}
	return text
}

// sjsonPath converts a "$.a.b[0].c" style JSON path to sjson's "a.b.0.c"
// notation.
func sjsonPath(path string) string {
	p := strings.TrimPrefix(path, "$.")
	p = strings.ReplaceAll(p, "[", ".")
	p = strings.ReplaceAll(p, "]", "")
	return p
}
