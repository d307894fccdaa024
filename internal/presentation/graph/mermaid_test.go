package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
)

func animals() *domain.Tree {
	return dsl.Ask("zboara?").
		Yes(dsl.Guess("vultur", "animale", "pasare")).
		No(dsl.Ask("toarce?").
			Yes(dsl.Guess("pisica", "animale", "mamifer")).
			No(dsl.Guess("caine", "animale", "mamifer"))).
		MustTree()
}

func TestGenerateMermaid(t *testing.T) {
	out := graph.GenerateMermaid(animals(), nil)

	contains := []string{
		"graph TD\n",
		`q{"zboara?"}`,
		`q -- da --> q_da`,
		`q_da(["vultur <br/> pasare"])`,
		`q -- nu --> q_nu`,
		`q_nu{"toarce?"}`,
		`q_nu -- nu --> q_nu_nu`,
		`q_nu_nu(["caine <br/> mamifer"])`,
	}
	for _, s := range contains {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q\ngot:\n%s", s, out)
		}
	}
	if strings.Contains(out, "classDef") {
		t.Errorf("expected no overlay styles without overlay")
	}
}

func TestGenerateMermaid_EmptyTree(t *testing.T) {
	if out := graph.GenerateMermaid(domain.NewTree(nil), nil); out != "graph TD\n" {
		t.Errorf("unexpected output for empty tree: %q", out)
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	tree := animals()
	overlay := graph.OverlayFromPath(tree, []domain.Step{
		{Question: "zboara?", Token: "nu"},
		{Question: "toarce?", Token: "da"},
		{Question: "pisica", Token: "da", Confirmation: true},
	})

	if got := strings.Join(overlay.VisitedNodes, ","); got != "q,q-nu" {
		t.Fatalf("visited = %q", got)
	}
	if overlay.CurrentNode != "q-nu-da" {
		t.Fatalf("current = %q", overlay.CurrentNode)
	}

	out := graph.GenerateMermaid(tree, overlay)
	for _, s := range []string{
		"classDef visited",
		"class q visited;",
		"class q_nu visited;",
		"class q_nu_da current;",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q\ngot:\n%s", s, out)
		}
	}
}

func TestOverlayFromPath_StopsAtUnrecognizedAnswer(t *testing.T) {
	overlay := graph.OverlayFromPath(animals(), []domain.Step{{Question: "zboara?", Token: "poate"}})
	if len(overlay.VisitedNodes) != 0 || overlay.CurrentNode != "q" {
		t.Errorf("unexpected overlay: %+v", overlay)
	}
}
