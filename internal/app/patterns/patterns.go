// Package patterns holds the frozen lookup tables shared by the redaction
// and path normalization stages: sensitive header and body field names,
// PII regular expressions, path-ID parameter mappings and the placeholder
// values substituted for redacted content.
package patterns

import (
	"regexp"
	"strings"
)

// Placeholder values keyed by semantic category. Substituted for redacted
// content; structure around them is never altered.
const (
	PlaceholderEmail  = "user@example.com"
	PlaceholderPhone  = "+15555550100"
	PlaceholderString = "REDACTED"
	PlaceholderID     = "00000000-0000-0000-0000-000000000000"
	PlaceholderURL    = "https://example.com/redacted"
	PlaceholderToken  = "REDACTED_TOKEN"
)

// SensitiveHeaders are matched case-insensitively against header names.
// Matching headers keep their name but have the value replaced with
// PlaceholderToken.
var SensitiveHeaders = map[string]bool{
	"authorization":   true,
	"cookie":          true,
	"set-cookie":      true,
	"x-api-key":       true,
	"x-auth-token":    true,
	"x-access-token":  true,
	"x-refresh-token": true,
}

// SensitiveFields are body field names (case-insensitive) whose string
// values are replaced wholesale with a placeholder chosen by
// PlaceholderForField.
var SensitiveFields = map[string]bool{
	"email":           true,
	"phone":           true,
	"phone_number":    true,
	"token":           true,
	"access_token":    true,
	"refresh_token":   true,
	"api_key":         true,
	"password":        true,
	"secret":          true,
	"profile_pic_url": true,
	"avatar_url":      true,
	"first_name":      true,
	"last_name":       true,
	"full_name":       true,
	"address":         true,
	"street":          true,
	"city":            true,
	"zip":             true,
	"postal_code":     true,
}

// IDFields are body field names (case-insensitive) whose UUID-shaped
// string values are replaced with PlaceholderID. Numeric IDs pass through.
var IDFields = map[string]bool{
	"id":          true,
	"user_id":     true,
	"frame_id":    true,
	"list_id":     true,
	"chore_id":    true,
	"category_id": true,
	"device_id":   true,
}

// PII regular expressions. UUIDRe and JWTRe anchor on the full value;
// the Embedded variants locate substrings inside larger strings.
var (
	UUIDRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	JWTRe  = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

	EmbeddedEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// EmbeddedPhoneRe requires a 3-3-4 digit grouping so that dates and
	// timestamps never match.
	EmbeddedPhoneRe = regexp.MustCompile(`(?:\+?1[\-.\s]?)?\(?[0-9]{3}\)?[\-.\s]?[0-9]{3}[\-.\s]?[0-9]{4}`)
	EmbeddedJWTRe   = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)

	EmailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// PathParam maps a concrete path segment pattern to the OpenAPI parameter
// name it becomes. The pattern's first capture group is the ID value.
type PathParam struct {
	Pattern *regexp.Regexp
	Name    string
}

const (
	uuidSeg = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`
	idSeg   = `(?:` + uuidSeg + `|[0-9]+)`
)

// PathParams is the ordered path-ID table used during URL redaction. Each
// entry is tried against the working URL in order; a match contributes one
// extracted path parameter and rewrites the segment to its braced name.
var PathParams = []PathParam{
	{regexp.MustCompile(`/frames/(` + idSeg + `)`), "frameId"},
	{regexp.MustCompile(`/lists/(` + idSeg + `)`), "listId"},
	{regexp.MustCompile(`/chores/(` + idSeg + `)`), "choreId"},
	{regexp.MustCompile(`/categories/(` + idSeg + `)`), "categoryId"},
	{regexp.MustCompile(`/devices/(` + idSeg + `)`), "deviceId"},
	{regexp.MustCompile(`/rewards/(` + idSeg + `)`), "rewardId"},
	{regexp.MustCompile(`/reward_points/(` + idSeg + `)`), "rewardPointId"},
	{regexp.MustCompile(`/items/(` + idSeg + `)`), "itemId"},
	{regexp.MustCompile(`/source_calendars/(` + idSeg + `)`), "sourceCalendarId"},
	{regexp.MustCompile(`/calendar_events/(` + idSeg + `)`), "calendarEventId"},
	{regexp.MustCompile(`/(` + uuidSeg + `)`), "id"},
	{regexp.MustCompile(`/([0-9]{5,})(/|$)`), "id"},
}

// PathRule rewrites every occurrence of a concrete resource-ID segment to
// a path template token during normalization.
type PathRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// PathRules is the ordered normalization table. Rules apply globally and
// sequentially to the same working string, so one path may accumulate
// replacements from several rules. Table order matters: the two generic
// fallbacks must come last.
var PathRules = []PathRule{
	{regexp.MustCompile(`/frames/` + idSeg + `(/|$)`), "/frames/{frameId}$1"},
	{regexp.MustCompile(`/lists/` + idSeg + `(/|$)`), "/lists/{listId}$1"},
	{regexp.MustCompile(`/chores/` + idSeg + `(/|$)`), "/chores/{choreId}$1"},
	{regexp.MustCompile(`/categories/` + idSeg + `(/|$)`), "/categories/{categoryId}$1"},
	{regexp.MustCompile(`/devices/` + idSeg + `(/|$)`), "/devices/{deviceId}$1"},
	{regexp.MustCompile(`/rewards/` + idSeg + `(/|$)`), "/rewards/{rewardId}$1"},
	{regexp.MustCompile(`/reward_points/` + idSeg + `(/|$)`), "/reward_points/{rewardPointId}$1"},
	{regexp.MustCompile(`/items/` + idSeg + `(/|$)`), "/items/{itemId}$1"},
	{regexp.MustCompile(`/source_calendars/` + idSeg + `(/|$)`), "/source_calendars/{sourceCalendarId}$1"},
	{regexp.MustCompile(`/calendar_events/` + idSeg + `(/|$)`), "/calendar_events/{calendarEventId}$1"},
	{regexp.MustCompile(`/` + uuidSeg + `(/|$)`), "/{id}$1"},
	{regexp.MustCompile(`/[0-9]{5,}(/|$)`), "/{id}$1"},
}

// PlaceholderForCategory maps a semantic category name to its placeholder.
// Unknown categories get the generic string placeholder.
func PlaceholderForCategory(category string) string {
	switch category {
	case "email":
		return PlaceholderEmail
	case "phone":
		return PlaceholderPhone
	case "id":
		return PlaceholderID
	case "url":
		return PlaceholderURL
	case "token":
		return PlaceholderToken
	default:
		return PlaceholderString
	}
}

// PlaceholderForField selects the placeholder for a sensitive field by
// substring match on the (lowercased) field name.
func PlaceholderForField(name string) string {
	switch {
	case strings.Contains(name, "email"):
		return PlaceholderEmail
	case strings.Contains(name, "phone"):
		return PlaceholderPhone
	case strings.Contains(name, "url"):
		return PlaceholderURL
	case strings.Contains(name, "token"), strings.Contains(name, "key"), strings.Contains(name, "secret"):
		return PlaceholderToken
	default:
		return PlaceholderString
	}
}
