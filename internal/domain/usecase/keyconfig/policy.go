package keyconfig

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/keylog/internal/domain/error"
)

// Policy selects how a configured level merges with an existing registration
type Policy string

const (
	// PolicyAdd registers the key once; later entries may only make it more verbose
	PolicyAdd Policy = "add"
	// PolicySet overwrites the threshold unconditionally
	PolicySet Policy = "set"
	// PolicyUpdate lowers the threshold, inserting absent keys
	PolicyUpdate Policy = "update"
)

// ParsePolicy parses a policy name; the empty string means PolicyAdd
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyAdd, nil
	case PolicyAdd, PolicySet, PolicyUpdate:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownPolicy, s)
	}
}
