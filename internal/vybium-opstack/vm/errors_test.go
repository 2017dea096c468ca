package vm

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutionError(t *testing.T) {
	t.Run("UnderflowMessage", func(t *testing.T) {
		err := NewStackUnderflowError("swap", 12)
		msg := err.Error()
		if !strings.Contains(msg, "swap") {
			t.Errorf("message %q should name the operation", msg)
		}
		if !strings.Contains(msg, "12") {
			t.Errorf("message %q should name the step", msg)
		}
	})

	t.Run("InvalidInputsMessage", func(t *testing.T) {
		err := NewInvalidProgramInputsError("too many values")
		if !strings.Contains(err.Error(), "too many values") {
			t.Errorf("message %q should carry the detail", err.Error())
		}
	})

	t.Run("MatchesByKind", func(t *testing.T) {
		err := NewStackUnderflowError("pop", 3)
		if !errors.Is(err, &ExecutionError{Kind: ErrStackUnderflow}) {
			t.Error("underflow errors should match by kind regardless of op and step")
		}
		if errors.Is(err, &ExecutionError{Kind: ErrInvalidProgramInputs}) {
			t.Error("errors of different kinds should not match")
		}
		if errors.Is(err, errors.New("stack underflow")) {
			t.Error("plain errors should not match")
		}
	})

	t.Run("DataStaysStructured", func(t *testing.T) {
		err := NewStackUnderflowError("dup", 7)
		if err.Op != "dup" || err.Step != 7 {
			t.Errorf("Op/Step = %q/%d, want dup/7", err.Op, err.Step)
		}
	})
}
