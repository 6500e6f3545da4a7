package redact

import (
	"net/url"

	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/patterns"
)

// URL rewrites concrete path IDs to braced parameter names and returns
// the extracted parameters. The path-ID table is scanned once in order;
// each pattern is applied to its first match against the working string,
// which mutates before the next pattern is tried, so one call can
// accumulate several replacements. UUID-shaped query values are replaced
// with the ID placeholder in the same pass. Malformed URLs are treated
// as opaque strings and returned unchanged.
func URL(raw string) (string, []harparse.PathParam) {
	working := raw
	var params []harparse.PathParam

	for _, pp := range patterns.PathParams {
		m := pp.Pattern.FindStringSubmatchIndex(working)
		if m == nil {
			continue
		}
		value := working[m[2]:m[3]]
		params = append(params, harparse.PathParam{Name: pp.Name, Value: value})
		working = working[:m[2]] + "{" + pp.Name + "}" + working[m[3]:]
	}

	return redactQueryIDs(working), params
}

func redactQueryIDs(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}

	values := u.Query()
	changed := false
	for name, vals := range values {
		for i, v := range vals {
			if patterns.UUIDRe.MatchString(v) {
				vals[i] = patterns.PlaceholderID
				changed = true
			}
		}
		values[name] = vals
	}
	if !changed {
		return raw
	}
	u.RawQuery = values.Encode()
	return u.String()
}
