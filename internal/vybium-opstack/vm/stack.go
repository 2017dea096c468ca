// Package vm implements the operand-stack engine of the execution-trace generator
package vm

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// StackTopSize is the number of dedicated trace columns for the top of the
// operand stack. Stack positions beyond this window live on the overflow list.
const StackTopSize = 16

// MinTraceLength is the smallest trace allocation that leaves room for at
// least one clock advance (mutators write to row step+1).
const MinTraceLength = 2

// maxTopIdx is the index of the deepest on-trace stack slot.
const maxTopIdx = StackTopSize - 1

// StackTrace holds the 16 stack-top columns of the execution trace.
// Column p, row s is the value of stack position p at clock cycle s.
// All columns always have the same length.
type StackTrace [StackTopSize][]field.Element

// Stack simulates the VM's operand stack cycle-by-cycle and materializes
// every cycle's stack state into the trace columns.
//
// The top 16 stack positions map directly onto trace columns; positions
// beyond 16 are kept on an auxiliary overflow list. Shift operations move
// values across that boundary so the trace columns always hold the logically
// topmost 16 elements. The overflow list length equals depth-16 whenever
// depth exceeds 16, and is empty otherwise.
//
// A Stack is created once per program execution, driven by exactly one
// interpreter loop, finalized once at program end, and then only read.
// It is not safe for concurrent use.
type Stack struct {
	step     int
	trace    StackTrace
	overflow []field.Element
	depth    int
}

// NewStack creates a new operand stack seeded with the initial stack values
// from the given program inputs.
//
// Row 0 of column i receives stack value i (index 0 is the top of the stack);
// all other trace cells start at the field zero. The initial depth is an
// explicit parameter rather than being inferred from the input count, and
// must cover every supplied value while keeping the overflow list empty.
func NewStack(inputs *ProgramInputs, initDepth, initTraceLength int) (*Stack, error) {
	if inputs == nil {
		return nil, fmt.Errorf("program inputs cannot be nil")
	}
	initValues := inputs.StackInit()
	if initDepth < len(initValues) {
		return nil, fmt.Errorf("initial depth %d is less than the number of initial stack values %d",
			initDepth, len(initValues))
	}
	if initDepth > StackTopSize {
		return nil, fmt.Errorf("initial depth %d exceeds the stack top size %d", initDepth, StackTopSize)
	}
	if initTraceLength < MinTraceLength {
		return nil, fmt.Errorf("initial trace length %d is less than the minimum %d",
			initTraceLength, MinTraceLength)
	}

	var trace StackTrace
	for i := 0; i < StackTopSize; i++ {
		column := make([]field.Element, initTraceLength)
		for j := range column {
			column[j] = field.Zero
		}
		if i < len(initValues) {
			column[0] = initValues[i]
		}
		trace[i] = column
	}

	return &Stack{
		step:     0,
		trace:    trace,
		overflow: make([]field.Element, 0),
		depth:    initDepth,
	}, nil
}

// Depth returns the logical depth of the stack at the current step.
// This counts both the on-trace top window and the overflow list.
func (s *Stack) Depth() int {
	return s.depth
}

// CurrentStep returns the current clock cycle of the execution trace.
func (s *Stack) CurrentStep() int {
	return s.step
}

// TraceLength returns the currently allocated execution trace length.
func (s *Stack) TraceLength() int {
	return len(s.trace[0])
}

// Peek returns a copy of the item currently at the top of the stack.
//
// Returns a stack underflow error if the stack is empty.
func (s *Stack) Peek() (field.Element, error) {
	if s.depth == 0 {
		return field.Zero, NewStackUnderflowError("peek", s.step)
	}
	return s.trace[0][s.step], nil
}

// TraceState returns the 16 trace column values at the current step.
//
// The result is always 16 elements long regardless of depth. Slots at
// positions >= depth hold whatever raw value the column currently stores;
// vacated slots are never zeroed, so they carry stale data once the stack
// has been used.
func (s *Stack) TraceState() [StackTopSize]field.Element {
	var result [StackTopSize]field.Element
	for i := 0; i < StackTopSize; i++ {
		result[i] = s.trace[i][s.step]
	}
	return result
}

// Trace returns the stack-top portion of the execution trace.
//
// The returned trace must not be mutated once construction is complete; it
// is the artifact handed to the proving pipeline.
func (s *Stack) Trace() *StackTrace {
	return &s.trace
}

// Get returns the value at the specified stack position at the current
// clock cycle.
//
// Panics if pos is not below the current depth; the caller must gate
// dispatch with CheckDepth first.
func (s *Stack) Get(pos int) field.Element {
	if pos >= s.depth {
		panic(fmt.Sprintf("stack underflow: position %d read at depth %d", pos, s.depth))
	}
	return s.trace[pos][s.step]
}

// Set writes the value at the specified stack position at the next clock
// cycle.
//
// Panics if pos is neither 0 nor below the current depth.
func (s *Stack) Set(pos int, value field.Element) {
	if pos != 0 && pos >= s.depth {
		panic(fmt.Sprintf("stack underflow: position %d written at depth %d", pos, s.depth))
	}
	s.trace[pos][s.step+1] = value
}

// CopyState copies stack values starting at the specified position at the
// current clock cycle to the same position at the next clock cycle. It is
// how the caller propagates slots an operation leaves untouched.
func (s *Stack) CopyState(startPos int) {
	if startPos >= StackTopSize {
		panic("start position cannot exceed stack top size")
	}
	if startPos > s.depth {
		panic("start position cannot exceed current depth")
	}
	endPos := s.depth
	if endPos > StackTopSize {
		endPos = StackTopSize
	}
	for i := startPos; i < endPos; i++ {
		s.trace[i][s.step+1] = s.trace[i][s.step]
	}
}

// ShiftLeft copies stack values starting at the specified position at the
// current clock cycle to position-1 at the next clock cycle, shrinking the
// stack by one. Positions below startPos-1 are untouched; the caller covers
// them with CopyState or Set.
//
// If the depth is greater than 16, the most recently spilled overflow item
// moves back into the deepest trace column so the top window stays full.
//
// Panics if the stack is empty or startPos is outside [1, 16) or exceeds
// the current depth.
func (s *Stack) ShiftLeft(startPos int) {
	if startPos == 0 {
		panic("start position must be greater than 0")
	}
	if startPos >= StackTopSize {
		panic("start position cannot exceed stack top size")
	}
	if startPos > s.depth {
		panic("start position cannot exceed current depth")
	}

	switch {
	case s.depth == 0:
		panic("stack underflow: shift left on an empty stack")
	case s.depth <= StackTopSize:
		for i := startPos; i < s.depth; i++ {
			s.trace[i-1][s.step+1] = s.trace[i][s.step]
		}
	default:
		for i := startPos; i < StackTopSize; i++ {
			s.trace[i-1][s.step+1] = s.trace[i][s.step]
		}
		last := len(s.overflow) - 1
		s.trace[maxTopIdx][s.step+1] = s.overflow[last]
		s.overflow = s.overflow[:last]
	}

	s.depth--
}

// ShiftRight copies stack values starting at the specified position at the
// current clock cycle to position+1 at the next clock cycle, growing the
// stack by one. The caller supplies the new value at the vacated position
// via Set.
//
// If the depth grows beyond 16, the value leaving the deepest trace column
// is pushed onto the overflow list.
//
// Panics if startPos is not below the stack top size or exceeds the current
// depth.
func (s *Stack) ShiftRight(startPos int) {
	if startPos >= StackTopSize {
		panic("start position cannot exceed stack top size")
	}
	if startPos > s.depth {
		panic("start position cannot exceed current depth")
	}

	switch {
	case s.depth == 0:
		// Nothing to move; only the depth grows.
	case s.depth <= maxTopIdx:
		for i := startPos; i < s.depth; i++ {
			s.trace[i+1][s.step+1] = s.trace[i][s.step]
		}
	default:
		for i := startPos; i < maxTopIdx; i++ {
			s.trace[i+1][s.step+1] = s.trace[i][s.step]
		}
		s.overflow = append(s.overflow, s.trace[maxTopIdx][s.step])
	}

	s.depth++
}

// AdvanceClock increments the clock cycle. The caller must already have
// populated row step+1 of every live column, directly or via CopyState and
// the shift operations.
func (s *Stack) AdvanceClock() {
	s.step++
}

// Finalize pads the execution trace: the final live stack state is copied
// forward until the last allocated row is reached. The resulting constant
// tail is what the downstream arithmetization expects past the last real
// instruction. Calling Finalize again once the trace is full is a no-op.
func (s *Stack) Finalize() {
	for s.step < s.TraceLength()-1 {
		s.CopyState(0)
		s.AdvanceClock()
	}
}

// EnsureTraceCapacity makes sure there is enough memory allocated for the
// trace to accommodate a new row, doubling the trace length when row step+1
// would fall outside the current allocation. The caller invokes this before
// the mutators of every cycle, which keeps growth synchronized across all
// columns and amortizes reallocation over the program length.
func (s *Stack) EnsureTraceCapacity() {
	if s.step+1 < s.TraceLength() {
		return
	}
	newLength := s.TraceLength() * 2
	for i := range s.trace {
		column := make([]field.Element, newLength)
		n := copy(column, s.trace[i])
		for j := n; j < newLength; j++ {
			column[j] = field.Zero
		}
		s.trace[i] = column
	}
}

// CheckDepth returns a stack underflow error if the current stack depth is
// smaller than the required depth. The error carries the name of the
// operation that triggered the check and the current step. This is the sole
// recoverable validation surface; once it has gated dispatch, the remaining
// contracts are interpreter bugs and panic instead.
func (s *Stack) CheckDepth(reqDepth int, op string) error {
	if s.depth < reqDepth {
		return NewStackUnderflowError(op, s.step)
	}
	return nil
}
