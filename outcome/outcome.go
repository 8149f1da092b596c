package outcome

import "fmt"

// Outcome is the closed set of verdicts a test oracle may report.
type Outcome int

const (
	// Pass means the configuration does not induce the failure.
	Pass Outcome = iota
	// Fail means the configuration induces the failure. This is the
	// target outcome every reduction algorithm drives toward.
	Fail
	// Unresolved means the test did not reproduce; it is handled like
	// Pass for the purpose of driving reduction.
	Unresolved
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Unresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// IsFail reports whether o is Fail.
func (o Outcome) IsFail() bool { return o == Fail }
