package scrape

import "fmt"

// Kind classifies scrape failures so callers can decide whether a retry
// makes sense. Navigation timeouts are transient; a missing selector
// means the target page changed and retrying is pointless.
type Kind int

const (
	KindLaunch Kind = iota + 1
	KindNavigation
	KindSelector
)

func (k Kind) String() string {
	switch k {
	case KindLaunch:
		return "launch"
	case KindNavigation:
		return "navigation"
	case KindSelector:
		return "selector"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scrape %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
