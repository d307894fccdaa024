package domain

// TopicSummary is the human-readable shape of a loaded topic.
type TopicSummary struct {
	Name  string `json:"name"`
	Depth int    `json:"depth"`
	Nodes int    `json:"nodes"`
}

// Summarize describes a tree under a topic name.
func Summarize(name string, t *Tree) TopicSummary {
	return TopicSummary{Name: name, Depth: t.Depth(), Nodes: t.NodeCount()}
}
