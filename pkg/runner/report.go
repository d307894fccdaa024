package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// ReportOptions tunes Report.
type ReportOptions struct {
	// Sentinel is written when no entity was resolved. Defaults to domain.Unknown.
	Sentinel string

	// Topics feeds the structure checks block. Empty skips the block.
	Topics []domain.TopicSummary

	// Reason appends the inconclusive reason to the checks block.
	Reason bool
}

// Report writes the resolved entity name (or the sentinel) on the first line,
// followed by a human-readable structure checks block.
func Report(w io.Writer, out domain.Outcome, opts ReportOptions) error {
	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = domain.Unknown
	}
	if _, err := fmt.Fprintln(w, out.Result(sentinel)); err != nil {
		return err
	}
	if len(opts.Topics) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("\n--- structure checks ---\n")

	parts := make([]string, 0, len(opts.Topics))
	var current *domain.TopicSummary
	for i, t := range opts.Topics {
		parts = append(parts, fmt.Sprintf("%s(%d nodes)", t.Name, t.Nodes))
		if t.Name == out.Topic {
			current = &opts.Topics[i]
		}
	}
	fmt.Fprintf(&sb, "topics: [%s]\n", strings.Join(parts, ", "))
	if current != nil {
		fmt.Fprintf(&sb, "current tree (depth): %d\n", current.Depth)
	}
	if opts.Reason && out.Reason != nil {
		fmt.Fprintf(&sb, "reason: %s\n", out.ReasonText())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
