package vm

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// ProgramInputs carries the caller-supplied inputs for one trace-generation
// run: the initial operand stack contents and the prover's secret input
// stream.
type ProgramInputs struct {
	stackInit   []field.Element
	secretInput []field.Element
}

// NewProgramInputs creates program inputs from the given value streams.
//
// stackInit seeds the operand stack; index 0 is the initial top of the
// stack, and at most 16 values are accepted so the whole seed fits in the
// on-trace top window. secretInput is the non-deterministic input stream
// consumed by the interpreter; it is not bounded.
//
// Both slices are copied, so the caller may reuse its buffers.
func NewProgramInputs(stackInit, secretInput []field.Element) (*ProgramInputs, error) {
	if len(stackInit) > StackTopSize {
		return nil, NewInvalidProgramInputsError(
			"initial stack may not hold more than 16 values")
	}

	inputs := &ProgramInputs{
		stackInit:   make([]field.Element, len(stackInit)),
		secretInput: make([]field.Element, len(secretInput)),
	}
	copy(inputs.stackInit, stackInit)
	copy(inputs.secretInput, secretInput)
	return inputs, nil
}

// StackInit returns the initial stack values; index 0 is the top of the
// stack.
func (pi *ProgramInputs) StackInit() []field.Element {
	return pi.stackInit
}

// SecretInput returns the secret input stream.
func (pi *ProgramInputs) SecretInput() []field.Element {
	return pi.secretInput
}

// Digest returns a sha3-256 digest identifying these inputs.
//
// The digest commits to the length and order of both streams; it lets
// callers tag a generated trace with the inputs that produced it.
func (pi *ProgramInputs) Digest() [32]byte {
	// Layout: len(stackInit) | stack values | len(secretInput) | secret values,
	// every item as a big-endian uint64.
	data := make([]byte, 0, 8*(2+len(pi.stackInit)+len(pi.secretInput)))
	data = binary.BigEndian.AppendUint64(data, uint64(len(pi.stackInit)))
	for _, v := range pi.stackInit {
		data = binary.BigEndian.AppendUint64(data, uint64(v.Value()))
	}
	data = binary.BigEndian.AppendUint64(data, uint64(len(pi.secretInput)))
	for _, v := range pi.secretInput {
		data = binary.BigEndian.AppendUint64(data, uint64(v.Value()))
	}
	return sha3.Sum256(data)
}
