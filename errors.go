package bizarromath

import "github.com/pkg/errors"

// Kind identifies a class of error at the package boundary, independent of
// the Go error value that carries it. Callers that want to branch on the
// failure mode should compare with errors.Is against the sentinel values
// below, not by inspecting the error string.
type Kind int

const (
	// DivideByZero covers a zero divisor in BigNumber division and a zero
	// denominator in Rational construction.
	DivideByZero Kind = iota
	// InvalidDigit covers a non-digit character encountered while parsing
	// a decimal or binary string.
	InvalidDigit
	// UnsupportedMode covers an integer-only entry point called with a
	// float-mode operand, or vice versa.
	UnsupportedMode
	// NegativeExponent covers a negative exponent passed to Pow.
	NegativeExponent
	// InvalidOperand covers sqrt of a negative operand.
	InvalidOperand
	// PrecisionExceeded is reserved for an optional precision cap; no
	// operation in this package currently enforces one.
	PrecisionExceeded
)

func (k Kind) String() string {
	switch k {
	case DivideByZero:
		return "divide by zero"
	case InvalidDigit:
		return "invalid digit"
	case UnsupportedMode:
		return "unsupported mode"
	case NegativeExponent:
		return "negative exponent"
	case InvalidOperand:
		return "invalid operand"
	case PrecisionExceeded:
		return "precision exceeded"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned across the package boundary.
// It wraps a Kind with an operation-specific message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is(err, someKindSentinel) work by comparing Kind alone,
// ignoring Msg, so callers can test for a failure class without caring
// about the exact wording.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, msg string) *Error {
	return &Error{Kind: k, Msg: msg}
}

// Sentinels for errors.Is comparisons, e.g. errors.Is(err, ErrDivideByZero).
var (
	ErrDivideByZero      = &Error{Kind: DivideByZero}
	ErrInvalidDigit      = &Error{Kind: InvalidDigit}
	ErrUnsupportedMode   = &Error{Kind: UnsupportedMode}
	ErrNegativeExponent  = &Error{Kind: NegativeExponent}
	ErrInvalidOperand    = &Error{Kind: InvalidOperand}
	ErrPrecisionExceeded = &Error{Kind: PrecisionExceeded}
)

// wrapf annotates a lower-level failure with the higher-level operation
// that triggered it, e.g. a reduction failure inside Rational.Add gets
// annotated with which rational operation produced it.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
