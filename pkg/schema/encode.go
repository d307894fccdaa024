package schema

import "github.com/aretw0/arbor/pkg/domain"

// Encode converts a tree back into its document form.
// An empty tree encodes to a document without a root key.
func Encode(tree *domain.Tree) map[string]any {
	doc := map[string]any{}
	if tree.Empty() {
		return doc
	}
	doc[domain.KeyRoot] = encodeNode(tree.Root())
	return doc
}

func encodeNode(n *domain.Node) map[string]any {
	if e, ok := n.Entity(); ok {
		return map[string]any{
			domain.KeyEntity: map[string]any{
				domain.KeyEntityName:   e.Name,
				domain.KeyEntityDomain: e.Domain,
				domain.KeyEntityKind:   e.Kind,
			},
		}
	}
	out := map[string]any{domain.KeyQuestion: n.Question()}
	if n.Yes() != nil {
		out[domain.KeyYes] = encodeNode(n.Yes())
	}
	if n.No() != nil {
		out[domain.KeyNo] = encodeNode(n.No())
	}
	return out
}
