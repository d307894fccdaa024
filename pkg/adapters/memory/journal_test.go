package memory_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/adapters/memory"
	contract "github.com/aretw0/arbor/pkg/ports/tests"
)

func TestMemoryJournal_Contract(t *testing.T) {
	contract.JournalContractTest(t, memory.NewJournal())
}
