package loam

// TopicMetadata represents a topic document stored in Loam.
// It uses "mapstructure" tags to match the JSON keys or the Markdown frontmatter.
type TopicMetadata struct {
	// ID overrides the topic name derived from the file name.
	ID string `json:"id,omitempty" mapstructure:"id"`

	// Title is a free-form label shown by 'arbor topics'.
	Title string `json:"titlu,omitempty" mapstructure:"titlu"`

	// Root is kept undecoded; pkg/schema owns the node grammar.
	Root any `json:"radacina" mapstructure:"radacina"`
}
