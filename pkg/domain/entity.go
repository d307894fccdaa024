package domain

// Entity is a possible answer of a topic.
// It is a plain value: copying it yields an independent record.
type Entity struct {
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain" yaml:"domain"`
	Kind   string `json:"kind" yaml:"kind"`
}

// NewEntity creates an Entity. The name is the identity key and must not be empty.
func NewEntity(name, domain, kind string) (Entity, error) {
	if name == "" {
		return Entity{}, ErrEmptyEntityName
	}
	return Entity{Name: name, Domain: domain, Kind: kind}, nil
}

// Equal reports whether two entities share the same identity (name).
func (e Entity) Equal(other Entity) bool {
	return e.Name == other.Name
}

func (e Entity) String() string {
	return "Entity{name='" + e.Name + "', domain='" + e.Domain + "', kind='" + e.Kind + "'}"
}
