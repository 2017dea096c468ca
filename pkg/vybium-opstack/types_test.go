package vybiumopstack

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// TestFullTraceRun drives a small program through the public surface and
// checks the finished trace row by row.
func TestFullTraceRun(t *testing.T) {
	inputs, err := NewProgramInputs([]field.Element{field.New(8)}, nil)
	if err != nil {
		t.Fatalf("NewProgramInputs failed: %v", err)
	}

	config := DefaultConfig().WithInitTraceLength(4)
	stack, err := NewStackWithConfig(inputs, 1, config)
	if err != nil {
		t.Fatalf("NewStackWithConfig failed: %v", err)
	}

	// Cycle 1: push 3 -> stack is [3, 8]
	stack.EnsureTraceCapacity()
	stack.ShiftRight(0)
	stack.Set(0, field.New(3))
	stack.AdvanceClock()

	// Cycle 2: dup position 1 -> stack is [8, 3, 8]
	stack.EnsureTraceCapacity()
	if err := stack.CheckDepth(2, "dup"); err != nil {
		t.Fatalf("CheckDepth failed: %v", err)
	}
	v := stack.Get(1)
	stack.ShiftRight(0)
	stack.Set(0, v)
	stack.AdvanceClock()

	stack.Finalize()

	if stack.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", stack.Depth())
	}
	if stack.CurrentStep() != stack.TraceLength()-1 {
		t.Errorf("CurrentStep() = %d, want %d", stack.CurrentStep(), stack.TraceLength()-1)
	}

	trace := stack.Trace()
	want := [][]uint64{
		{8, 3, 8, 8}, // st0 per cycle: seed, push, dup, padding
		{0, 8, 3, 3}, // st1
		{0, 0, 8, 8}, // st2
	}
	for col, rows := range want {
		for row, value := range rows {
			if !trace[col][row].Equal(field.New(value)) {
				t.Errorf("trace[%d][%d] = %v, want %d", col, row, trace[col][row], value)
			}
		}
	}
}

// TestFacadeConstants pins the re-exported constants to the engine's values.
func TestFacadeConstants(t *testing.T) {
	if StackTopSize != 16 {
		t.Errorf("StackTopSize = %d, want 16", StackTopSize)
	}
	if MinTraceLength != 2 {
		t.Errorf("MinTraceLength = %d, want 2", MinTraceLength)
	}
}

// TestConfigRejection checks that an invalid config never reaches the engine.
func TestConfigRejection(t *testing.T) {
	inputs, err := NewProgramInputs(nil, nil)
	if err != nil {
		t.Fatalf("NewProgramInputs failed: %v", err)
	}
	config := DefaultConfig().WithInitTraceLength(3)
	if _, err := NewStackWithConfig(inputs, 0, config); err == nil {
		t.Error("NewStackWithConfig should reject a non-power-of-two length")
	}
}
