package vybiumopstack

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-opstack/internal/vybium-opstack/utils"
	"github.com/vybium/vybium-opstack/internal/vybium-opstack/vm"
)

// FieldElement represents an element in the arithmetization field.
// This is the public name for the element type used throughout the trace.
type FieldElement = field.Element

// Stack is the operand-stack trace engine
type Stack = vm.Stack

// StackTrace holds the 16 stack-top columns of the execution trace
type StackTrace = vm.StackTrace

// ProgramInputs carries the initial stack values and secret inputs for one
// trace-generation run
type ProgramInputs = vm.ProgramInputs

// ExecutionError is the structured error returned by fallible stack
// operations
type ExecutionError = vm.ExecutionError

// ErrorKind identifies the category of an ExecutionError
type ErrorKind = vm.ErrorKind

// Config represents the configuration for execution-trace generation
type Config = utils.Config

// StackTopSize is the number of dedicated trace columns for the top of the
// operand stack
const StackTopSize = vm.StackTopSize

// MinTraceLength is the smallest allowed initial trace length
const MinTraceLength = vm.MinTraceLength

// Error kinds reported by ExecutionError.
const (
	ErrStackUnderflow       = vm.ErrStackUnderflow
	ErrInvalidProgramInputs = vm.ErrInvalidProgramInputs
)

// NewProgramInputs creates program inputs from the given value streams;
// see the vm package for the accepted shapes.
func NewProgramInputs(stackInit, secretInput []field.Element) (*ProgramInputs, error) {
	return vm.NewProgramInputs(stackInit, secretInput)
}

// NewStack creates a new operand stack seeded with the initial stack values
// from the given program inputs.
func NewStack(inputs *ProgramInputs, initDepth, initTraceLength int) (*Stack, error) {
	return vm.NewStack(inputs, initDepth, initTraceLength)
}

// NewStackWithConfig creates a new operand stack using the configured
// initial trace length.
func NewStackWithConfig(inputs *ProgramInputs, initDepth int, config *Config) (*Stack, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return vm.NewStack(inputs, initDepth, config.InitTraceLength)
}

// DefaultConfig returns a default trace-generation configuration
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}
