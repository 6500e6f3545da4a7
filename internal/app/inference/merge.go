package inference

// Merge combines independently inferred nodes into one. Inputs with the
// same base type are merged within their group; disagreeing base types
// produce a union of the per-group results. Null inputs do not form a
// union member, they mark the result nullable.
func Merge(nodes []*Node) *Node {
	switch len(nodes) {
	case 0:
		return &Node{Kind: KindUnknown}
	case 1:
		return nodes[0]
	}

	// Flatten one level of unions so a member never wraps another union
	// with overlapping types.
	flat := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == KindUnion {
			flat = append(flat, n.Members...)
			if n.Nullable {
				flat = append(flat, &Node{Kind: KindNull, Nullable: true})
			}
			continue
		}
		flat = append(flat, n)
	}

	nullable := false
	var typed []*Node
	for _, n := range flat {
		switch n.Kind {
		case KindUnknown:
			// Absent values constrain nothing.
		case KindNull:
			nullable = true
		default:
			if n.Nullable {
				nullable = true
			}
			typed = append(typed, n)
		}
	}

	if len(typed) == 0 {
		if nullable {
			return &Node{Kind: KindNull, Nullable: true}
		}
		return &Node{Kind: KindUnknown}
	}

	// Group by base type, keeping first-seen group order.
	var order []Kind
	groups := map[Kind][]*Node{}
	for _, n := range typed {
		if _, ok := groups[n.Kind]; !ok {
			order = append(order, n.Kind)
		}
		groups[n.Kind] = append(groups[n.Kind], n)
	}

	merged := make([]*Node, len(order))
	for i, k := range order {
		merged[i] = mergeGroup(k, groups[k])
	}

	if len(merged) == 1 {
		return withNullable(merged[0], nullable)
	}
	return &Node{Kind: KindUnion, Members: merged, Nullable: nullable}
}

func mergeGroup(kind Kind, nodes []*Node) *Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	switch kind {
	case KindObject:
		return mergeObjects(nodes)
	case KindArray:
		return mergeArrays(nodes)
	default:
		// Primitive duplicates: first node wins, later formats and
		// patterns are not merged.
		return nodes[0]
	}
}

func mergeObjects(nodes []*Node) *Node {
	out := &Node{Kind: KindObject}

	// Field order follows first observation across the inputs.
	var names []string
	children := map[string][]*Node{}
	required := map[string]bool{}
	for _, n := range nodes {
		for _, f := range n.Fields {
			if _, seen := children[f.Name]; !seen {
				names = append(names, f.Name)
			}
			children[f.Name] = append(children[f.Name], f.Node)
			// Required-ness is the union across samples: completeness
			// is favored over strict validation.
			if f.Required {
				required[f.Name] = true
			}
		}
	}

	for _, name := range names {
		out.Fields = append(out.Fields, Field{
			Name:     name,
			Node:     Merge(children[name]),
			Required: required[name],
		})
	}
	return out
}

func mergeArrays(nodes []*Node) *Node {
	items := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Items != nil {
			items = append(items, n.Items)
		}
	}
	return &Node{Kind: KindArray, Items: Merge(items)}
}

func withNullable(n *Node, nullable bool) *Node {
	if !nullable || n.Nullable {
		return n
	}
	out := *n
	out.Nullable = true
	return &out
}
