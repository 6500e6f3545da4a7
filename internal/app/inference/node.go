// Package inference derives JSON-Schema-like type descriptions from
// observed JSON values and merges descriptions taken from heterogeneous
// samples into a single node.
package inference

// Kind identifies the variant of a Node. Merge logic switches
// exhaustively on it.
type Kind int

const (
	// KindUnknown is the empty, unconstrained node. Absent values infer
	// it and it contributes nothing to a merge.
	KindUnknown Kind = iota
	KindNull
	KindBoolean
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Field is one object property. Required means the value was observed
// present and non-null; across merged samples required-ness is the union
// of the contributing nodes' flags.
type Field struct {
	Name     string
	Node     *Node
	Required bool
}

// Node is an inferred schema. It is a tagged variant: exactly the fields
// relevant to Kind are populated. Nodes are immutable once produced.
type Node struct {
	Kind        Kind
	Format      string
	Pattern     string
	Description string
	Nullable    bool

	// Items is the merged element type of an array node.
	Items *Node

	// Fields hold object properties in first-observation order. The
	// order is cosmetic only.
	Fields []Field

	// Members are the per-type nodes of a union, flattened one level.
	Members []*Node
}

// Field returns the named object field, nil when absent.
func (n *Node) Field(name string) *Field {
	for i := range n.Fields {
		if n.Fields[i].Name == name {
			return &n.Fields[i]
		}
	}
	return nil
}
