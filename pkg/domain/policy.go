package domain

import "fmt"

// ConfirmationPolicy decides what happens when the input ends while a leaf
// awaits confirmation.
type ConfirmationPolicy string

const (
	// ConfirmInconclusive treats a missing confirmation as a rejection.
	ConfirmInconclusive ConfirmationPolicy = "inconclusive"
	// ConfirmAccept treats a missing confirmation as implicit acceptance.
	ConfirmAccept ConfirmationPolicy = "accept"
)

// ParseConfirmationPolicy maps a config value to a policy. Empty means the default.
func ParseConfirmationPolicy(s string) (ConfirmationPolicy, error) {
	switch ConfirmationPolicy(s) {
	case "", ConfirmInconclusive:
		return ConfirmInconclusive, nil
	case ConfirmAccept:
		return ConfirmAccept, nil
	default:
		return "", fmt.Errorf("unknown confirmation policy %q (expected %q or %q)", s, ConfirmInconclusive, ConfirmAccept)
	}
}
