// Package vybiumopstack provides the operand-stack engine of the Vybium
// execution-trace generator.
//
// The engine simulates a stack-based VM's operand stack cycle-by-cycle and
// materializes every cycle's stack state into a fixed-width trace matrix for
// the STARK proving pipeline. The trace keeps exactly 16 columns, one per
// stack-top position; stack contents beyond the top 16 live on an auxiliary
// overflow list, and the shift operations move values across that boundary
// so the columns always hold the logically topmost 16 elements.
//
// # Quick Start
//
// Seeding a stack and driving one cycle:
//
//	inputs, err := vybiumopstack.NewProgramInputs(stackInit, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	stack, err := vybiumopstack.NewStack(inputs, len(stackInit), 64)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// One cycle: ensure capacity, mutate row step+1, advance the clock.
//	stack.EnsureTraceCapacity()
//	stack.ShiftRight(0)
//	stack.Set(0, value)
//	stack.AdvanceClock()
//
//	// At program end, pad the trace and hand it to the prover.
//	stack.Finalize()
//	trace := stack.Trace()
//
// The interpreter is responsible for the cycle discipline: every cycle calls
// EnsureTraceCapacity first, then the mutators that together populate the
// next row of every live column, then AdvanceClock. CheckDepth gates
// dispatch; once it has passed, the remaining operation contracts are
// interpreter bugs and panic instead of returning errors.
package vybiumopstack
