package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// OverlayFromPath replays the answered questions of a path over tree and
// returns the ids of the nodes it went through. The last node reached is current.
func OverlayFromPath(tree *domain.Tree, path []domain.Step) *GraphOverlay {
	if tree == nil || tree.Empty() {
		return nil
	}
	overlay := &GraphOverlay{}
	id, node := "q", tree.Root()
	for _, step := range path {
		if step.Confirmation || node == nil || node.IsLeaf() {
			break
		}
		answer := domain.ParseAnswer(step.Token)
		next := node.Child(answer)
		if next == nil {
			break
		}
		overlay.VisitedNodes = append(overlay.VisitedNodes, id)
		id, node = childID(id, answer), next
	}
	overlay.CurrentNode = id
	return overlay
}

// GenerateMermaid produces a Mermaid flowchart of a knowledge tree.
// It applies semantic styling:
// - Question: {Rhombus}
// - Entity: ([Stadium])
// Edges are labelled with the answer that follows them.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(tree *domain.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	if tree != nil && !tree.Empty() {
		writeNode(&sb, "q", tree.Root())
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentNode != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, id string, node *domain.Node) {
	safeID := sanitizeMermaidID(id)
	if entity, ok := node.Entity(); ok {
		label := escapeLabel(entity.Name)
		if entity.Kind != "" {
			label = fmt.Sprintf("%s <br/> %s", label, escapeLabel(entity.Kind))
		}
		sb.WriteString(fmt.Sprintf("    %s([\"%s\"])\n", safeID, label))
		return
	}
	if node.IsLeaf() {
		sb.WriteString(fmt.Sprintf("    %s[\"?\"]\n", safeID))
		return
	}

	sb.WriteString(fmt.Sprintf("    %s{\"%s\"}\n", safeID, escapeLabel(node.Question())))
	for _, answer := range []domain.Answer{domain.AnswerYes, domain.AnswerNo} {
		child := node.Child(answer)
		if child == nil {
			continue
		}
		cid := childID(id, answer)
		sb.WriteString(fmt.Sprintf("    %s -- %s --> %s\n", safeID, answerLabel(answer), sanitizeMermaidID(cid)))
		writeNode(sb, cid, child)
	}
}

func childID(parent string, answer domain.Answer) string {
	if answer == domain.AnswerYes {
		return parent + "-" + domain.KeyYes
	}
	return parent + "-" + domain.KeyNo
}

func answerLabel(answer domain.Answer) string {
	if answer == domain.AnswerYes {
		return domain.KeyYes
	}
	return domain.KeyNo
}

// Escape double quotes for Mermaid labels.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
