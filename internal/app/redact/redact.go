// Package redact sanitizes captured transactions: sensitive headers,
// cookies, query values, body fields and URL path IDs are replaced with
// fixed placeholders while the structure of every value is preserved.
package redact

import (
	"strings"

	"github.com/har-tools/har2openapi/internal/app/harparse"
	"github.com/har-tools/har2openapi/internal/app/patterns"
)

// Transaction returns a sanitized copy of the entry. The input is never
// mutated and no error is ever returned: content that cannot be parsed
// passes through unchanged.
func Transaction(e harparse.Entry) harparse.Entry {
	out := e.Clone()

	out.RequestHeaders = redactHeaders(out.RequestHeaders)
	out.ResponseHeaders = redactHeaders(out.ResponseHeaders)

	// Cookies are dropped wholesale regardless of content.
	out.RequestCookies = []harparse.Cookie{}
	out.ResponseCookies = []harparse.Cookie{}

	out.QueryParams = redactQueryParams(out.QueryParams)

	if out.RequestBody != nil && isJSON(out.RequestBody.MimeType) {
		out.RequestBody.Text = Body(out.RequestBody.Text)
	}
	if out.ResponseBody != nil && isJSON(out.ResponseBody.MimeType) {
		out.ResponseBody.Text = Body(out.ResponseBody.Text)
	}

	url, params := URL(out.URL)
	out.URL = url
	out.PathParams = params

	return out
}

func redactHeaders(headers []harparse.Header) []harparse.Header {
	for i, h := range headers {
		if patterns.SensitiveHeaders[strings.ToLower(h.Name)] {
			headers[i].Value = patterns.PlaceholderToken
		}
	}
	return headers
}

// redactQueryParams replaces parameter values matching UUID, email or JWT
// shapes, in that priority order. Names are never altered.
func redactQueryParams(params []harparse.QueryParam) []harparse.QueryParam {
	for i, p := range params {
		params[i].Value = redactQueryValue(p.Value)
	}
	return params
}

func redactQueryValue(value string) string {
	switch {
	case patterns.UUIDRe.MatchString(value):
		return patterns.PlaceholderID
	case patterns.EmailRe.MatchString(value):
		return patterns.PlaceholderEmail
	case patterns.JWTRe.MatchString(value):
		return patterns.PlaceholderToken
	default:
		return value
	}
}

func isJSON(mimeType string) bool {
	return strings.Contains(strings.ToLower(mimeType), "json")
}
