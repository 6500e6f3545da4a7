package inference

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
)

// String format detection, first match wins. The date regex is strict:
// "not-a-date-2024" must fall through to a plain string.
var (
	dateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)
	uuidRe     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	uriRe      = regexp.MustCompile(`^https?://`)
	hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
	clockRe    = regexp.MustCompile(`^\d{2}:\d{2}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Infer produces a schema node for one decoded JSON value. It is
// deterministic: structurally equal inputs yield structurally equal
// nodes (object fields are visited in sorted key order).
func Infer(value interface{}) *Node {
	switch v := value.(type) {
	case nil:
		return &Node{Kind: KindNull, Nullable: true}
	case bool:
		return &Node{Kind: KindBoolean}
	case float64:
		return inferFloat(v)
	case int:
		return &Node{Kind: KindInteger}
	case int64:
		return &Node{Kind: KindInteger}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return inferFloat(f)
		}
		return &Node{Kind: KindNumber}
	case string:
		return inferString(v)
	case []interface{}:
		return inferArray(v)
	case map[string]interface{}:
		return inferObject(v)
	default:
		return &Node{Kind: KindUnknown}
	}
}

func inferFloat(f float64) *Node {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		return &Node{Kind: KindInteger}
	}
	return &Node{Kind: KindNumber}
}

func inferString(s string) *Node {
	switch {
	case dateRe.MatchString(s):
		return &Node{Kind: KindString, Format: "date"}
	case dateTimeRe.MatchString(s):
		return &Node{Kind: KindString, Format: "date-time"}
	case uuidRe.MatchString(s):
		return &Node{Kind: KindString, Format: "uuid"}
	case uriRe.MatchString(s):
		return &Node{Kind: KindString, Format: "uri"}
	case hexColorRe.MatchString(s):
		return &Node{Kind: KindString, Pattern: `^#?[0-9a-fA-F]{6}$`, Description: "Hex color"}
	case clockRe.MatchString(s):
		return &Node{Kind: KindString, Format: "time", Description: "Time in HH:MM format"}
	case emailRe.MatchString(s):
		return &Node{Kind: KindString, Format: "email"}
	default:
		return &Node{Kind: KindString}
	}
}

func inferArray(items []interface{}) *Node {
	if len(items) == 0 {
		return &Node{Kind: KindArray, Items: &Node{Kind: KindUnknown}}
	}
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = Infer(item)
	}
	return &Node{Kind: KindArray, Items: Merge(nodes)}
}

func inferObject(obj map[string]interface{}) *Node {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &Node{Kind: KindObject}
	for _, k := range keys {
		child := Infer(obj[k])
		node.Fields = append(node.Fields, Field{
			Name:     k,
			Node:     child,
			Required: obj[k] != nil,
		})
	}
	return node
}
