package vm

import "fmt"

// ErrorKind identifies the category of an execution error
type ErrorKind int

const (
	// ErrStackUnderflow indicates an operation required more stack depth
	// than was present
	ErrStackUnderflow ErrorKind = iota

	// ErrInvalidProgramInputs indicates the supplied program inputs cannot
	// seed a stack
	ErrInvalidProgramInputs
)

// ExecutionError is the structured, caller-recoverable failure surface of
// the stack engine. The offending operation and cycle are carried as data so
// the interpreter can handle them programmatically; Error renders them only
// for display.
type ExecutionError struct {
	Kind ErrorKind

	// Op is the name of the operation that triggered the failure and Step
	// the clock cycle at which it occurred. Both are set for underflow
	// errors only.
	Op   string
	Step int

	// Message holds details for input validation failures.
	Message string
}

// NewStackUnderflowError creates an execution error reporting that the named
// operation required more stack depth than was present at the given step.
func NewStackUnderflowError(op string, step int) *ExecutionError {
	return &ExecutionError{Kind: ErrStackUnderflow, Op: op, Step: step}
}

// NewInvalidProgramInputsError creates an execution error reporting that the
// supplied program inputs are unusable.
func NewInvalidProgramInputsError(message string) *ExecutionError {
	return &ExecutionError{Kind: ErrInvalidProgramInputs, Message: message}
}

// Error returns the error message
func (e *ExecutionError) Error() string {
	switch e.Kind {
	case ErrStackUnderflow:
		return fmt.Sprintf("stack underflow in %s at step %d", e.Op, e.Step)
	case ErrInvalidProgramInputs:
		return fmt.Sprintf("invalid program inputs: %s", e.Message)
	default:
		return fmt.Sprintf("execution error [%d]", e.Kind)
	}
}

// Is checks if the error matches the target error by kind
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
