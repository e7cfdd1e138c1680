package nocomment

import "fmt"

// Policy decides what happens to a comment opener that has no closing marker
// before the end of the input.
type Policy int

const (
	// PassThrough emits an unterminated opener and everything after it unchanged.
	PassThrough Policy = iota

	// Discard drops everything from an unterminated opener to the end of input.
	Discard
)

// DefaultPolicy is the policy used by the package-level Strip.
const DefaultPolicy = PassThrough

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case PassThrough:
		return "pass-through"
	case Discard:
		return "discard"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration value into a Policy.
// An empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "":
		return DefaultPolicy, nil
	case "pass-through", "passthrough":
		return PassThrough, nil
	case "discard":
		return Discard, nil
	default:
		return DefaultPolicy, fmt.Errorf("unknown unterminated comment policy: %q", s)
	}
}
