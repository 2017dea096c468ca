package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-opstack/internal/vybium-opstack/utils"
	vybiumopstack "github.com/vybium/vybium-opstack/pkg/vybium-opstack"
)

// Input format: two JSON lines on stdin.
// Line 1: program inputs, line 2: the operation sequence.
type InputsLine struct {
	StackInit   []uint64 `json:"stack_init"`
	SecretInput []uint64 `json:"secret_input,omitempty"`
}

type OperationsLine struct {
	Operations []Operation `json:"operations"`
}

// Operation is one stack operation to execute, one clock cycle each.
// Supported ops: "push" (value), "pop", "dup" (pos), "swap" (pos), "noop".
type Operation struct {
	Op    string  `json:"op"`
	Pos   *int    `json:"pos,omitempty"`
	Value *uint64 `json:"value,omitempty"`
}

// TraceSummary is the result written to stdout after finalization
type TraceSummary struct {
	Depth        int      `json:"depth"`
	Steps        int      `json:"steps"`
	TraceLength  int      `json:"trace_length"`
	TraceState   []uint64 `json:"trace_state"`
	InputsDigest string   `json:"inputs_digest"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)

	// Line 1: program inputs
	if !scanner.Scan() {
		fatal("Failed to read program inputs")
	}
	var inputsLine InputsLine
	if err := json.Unmarshal(scanner.Bytes(), &inputsLine); err != nil {
		fatal(fmt.Sprintf("Failed to parse program inputs: %v", err))
	}

	// Line 2: operations
	if !scanner.Scan() {
		fatal("Failed to read operations")
	}
	var opsLine OperationsLine
	if err := json.Unmarshal(scanner.Bytes(), &opsLine); err != nil {
		fatal(fmt.Sprintf("Failed to parse operations: %v", err))
	}

	inputs, err := vybiumopstack.NewProgramInputs(
		toElements(inputsLine.StackInit), toElements(inputsLine.SecretInput))
	if err != nil {
		fatal(fmt.Sprintf("Invalid program inputs: %v", err))
	}

	// Size the initial trace to the program so most runs never reallocate;
	// the stack still doubles on its own if an estimate is ever wrong.
	initLength := utils.NextPowerOfTwo(len(opsLine.Operations) + 1)
	if initLength < utils.MinInitTraceLength {
		initLength = utils.MinInitTraceLength
	}
	config := utils.DefaultConfig().WithInitTraceLength(initLength)
	stack, err := vybiumopstack.NewStackWithConfig(inputs, len(inputsLine.StackInit), config)
	if err != nil {
		fatal(fmt.Sprintf("Failed to create stack: %v", err))
	}

	for i, op := range opsLine.Operations {
		if err := applyOperation(stack, op); err != nil {
			fatal(fmt.Sprintf("program execution failed at operation %d: %v", i, err))
		}
	}

	stack.Finalize()

	state := stack.TraceState()
	traceState := make([]uint64, len(state))
	for i, v := range state {
		traceState[i] = uint64(v.Value())
	}
	digest := inputs.Digest()

	summary := TraceSummary{
		Depth:        stack.Depth(),
		Steps:        stack.CurrentStep(),
		TraceLength:  stack.TraceLength(),
		TraceState:   traceState,
		InputsDigest: hex.EncodeToString(digest[:]),
	}
	out, err := json.Marshal(summary)
	if err != nil {
		fatal(fmt.Sprintf("Failed to encode summary: %v", err))
	}
	fmt.Println(string(out))
}

// applyOperation runs one stack operation as one clock cycle: capacity
// first, then the mutators that populate the next row, then the clock.
// Dispatch lives here, outside the engine; the depth checks gate every
// operation before any mutator runs.
func applyOperation(stack *vybiumopstack.Stack, op Operation) error {
	stack.EnsureTraceCapacity()

	switch op.Op {
	case "push":
		if op.Value == nil {
			return fmt.Errorf("push requires a value")
		}
		stack.ShiftRight(0)
		stack.Set(0, field.New(*op.Value))

	case "pop":
		if err := stack.CheckDepth(1, "pop"); err != nil {
			return err
		}
		stack.ShiftLeft(1)

	case "dup":
		pos := 0
		if op.Pos != nil {
			pos = *op.Pos
		}
		if pos < 0 || pos >= vybiumopstack.StackTopSize {
			return fmt.Errorf("dup position %d out of range", pos)
		}
		if err := stack.CheckDepth(pos+1, "dup"); err != nil {
			return err
		}
		v := stack.Get(pos)
		stack.ShiftRight(0)
		stack.Set(0, v)

	case "swap":
		if op.Pos == nil {
			return fmt.Errorf("swap requires a position")
		}
		pos := *op.Pos
		if pos < 1 || pos >= vybiumopstack.StackTopSize {
			return fmt.Errorf("swap position %d out of range", pos)
		}
		if err := stack.CheckDepth(pos+1, "swap"); err != nil {
			return err
		}
		top := stack.Get(0)
		other := stack.Get(pos)
		stack.CopyState(0)
		stack.Set(0, other)
		stack.Set(pos, top)

	case "noop":
		stack.CopyState(0)

	default:
		return fmt.Errorf("unknown operation %q", op.Op)
	}

	stack.AdvanceClock()
	return nil
}

func toElements(values []uint64) []field.Element {
	result := make([]field.Element, len(values))
	for i, v := range values {
		result[i] = field.New(v)
	}
	return result
}

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}
