package schema

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// entityRecord mirrors the "entitate" object of a leaf.
type entityRecord struct {
	Name   string `mapstructure:"nume"`
	Domain string `mapstructure:"domeniu"`
	Kind   string `mapstructure:"tip"`
}

var requiredEntityKeys = []string{domain.KeyEntityName, domain.KeyEntityDomain, domain.KeyEntityKind}

// DecodeTree builds a tree from a topic document.
// It fails with a *DocumentError on the first missing key or unrecognized shape.
func DecodeTree(source string, doc map[string]any) (*domain.Tree, error) {
	d := &decoder{source: source}
	root := d.decodeDocument(doc)
	if len(d.errs) > 0 {
		return nil, d.errs[0]
	}
	return domain.NewTree(root), nil
}

// LoadInto decodes doc and, only on success, replaces the root of tree.
// On failure tree keeps its previous root.
func LoadInto(tree *domain.Tree, source string, doc map[string]any) error {
	decoded, err := DecodeTree(source, doc)
	if err != nil {
		return err
	}
	tree.Replace(decoded.Root())
	return nil
}

// Validate checks the whole document and reports every defect found.
func Validate(source string, doc map[string]any) error {
	d := &decoder{source: source}
	d.decodeDocument(doc)
	if len(d.errs) > 0 {
		return &AggregateError{Errors: d.errs}
	}
	return nil
}

// decoder keeps going after a defect so Validate can report all of them.
// A subtree containing a defect decodes to nil.
type decoder struct {
	source string
	errs   []error
}

func (d *decoder) fail(path string, cause error) {
	d.errs = append(d.errs, &DocumentError{Source: d.source, Path: path, Cause: cause})
}

func (d *decoder) decodeDocument(doc map[string]any) *domain.Node {
	raw, ok := doc[domain.KeyRoot]
	if !ok {
		d.fail("", &ValidationError{Key: domain.KeyRoot, Reason: "required key missing"})
		return nil
	}
	return d.decodeNode(raw, domain.KeyRoot)
}

func (d *decoder) decodeNode(raw any, path string) *domain.Node {
	m, ok := asMap(raw)
	if !ok {
		d.fail(path, &ValidationError{Key: lastKey(path), Reason: "expected an object", Value: raw})
		return nil
	}

	_, hasEntity := m[domain.KeyEntity]
	_, hasQuestion := m[domain.KeyQuestion]
	switch {
	case hasEntity && hasQuestion:
		d.fail(path, &ValidationError{Key: lastKey(path), Reason: "node has both entity and question shape"})
		return nil
	case hasEntity:
		return d.decodeLeaf(m[domain.KeyEntity], path+"."+domain.KeyEntity)
	case hasQuestion:
		return d.decodeQuestion(m, path)
	default:
		d.fail(path, &ValidationError{Key: lastKey(path), Reason: "node matches neither entity nor question shape"})
		return nil
	}
}

func (d *decoder) decodeLeaf(raw any, path string) *domain.Node {
	m, ok := asMap(raw)
	if !ok {
		d.fail(path, &ValidationError{Key: domain.KeyEntity, Reason: "expected an object", Value: raw})
		return nil
	}

	missing := false
	for _, key := range requiredEntityKeys {
		if _, ok := m[key]; !ok {
			d.fail(path+"."+key, &ValidationError{Key: key, Reason: "required key missing"})
			missing = true
		}
	}
	if missing {
		return nil
	}

	var rec entityRecord
	if err := mapstructure.Decode(m, &rec); err != nil {
		d.fail(path, fmt.Errorf("decode entity: %w", err))
		return nil
	}

	node, err := domain.NewLeaf(domain.Entity{Name: rec.Name, Domain: rec.Domain, Kind: rec.Kind})
	if err != nil {
		d.fail(path+"."+domain.KeyEntityName, err)
		return nil
	}
	return node
}

func (d *decoder) decodeQuestion(m map[string]any, path string) *domain.Node {
	text, ok := m[domain.KeyQuestion].(string)
	if !ok || text == "" {
		d.fail(path+"."+domain.KeyQuestion, &ValidationError{Key: domain.KeyQuestion, Reason: "expected a non-empty string", Value: m[domain.KeyQuestion]})
	}

	var yes, no *domain.Node
	if raw, ok := m[domain.KeyYes]; ok {
		yes = d.decodeNode(raw, path+"."+domain.KeyYes)
	} else {
		d.fail(path+"."+domain.KeyYes, &ValidationError{Key: domain.KeyYes, Reason: "required key missing"})
	}
	if raw, ok := m[domain.KeyNo]; ok {
		no = d.decodeNode(raw, path+"."+domain.KeyNo)
	} else {
		d.fail(path+"."+domain.KeyNo, &ValidationError{Key: domain.KeyNo, Reason: "required key missing"})
	}

	if !ok || text == "" || yes == nil || no == nil {
		return nil
	}
	node, err := domain.NewQuestion(text, yes, no)
	if err != nil {
		d.fail(path, err)
		return nil
	}
	return node
}

// asMap accepts both string-keyed maps (JSON) and interface-keyed maps (some YAML decoders).
func asMap(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func lastKey(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return path
}
