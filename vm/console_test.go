package vm

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeConsole serves scripted input and records output.
type fakeConsole struct {
	input    []byte
	output   bytes.Buffer
	polls    int
	readErr  error // returned once input runs out, io.EOF when nil
	writeErr error
}

func (f *fakeConsole) Available() bool {
	f.polls++
	return len(f.input) > 0
}

func (f *fakeConsole) ReadByte() (byte, error) {
	if len(f.input) == 0 {
		if f.readErr != nil {
			return 0, f.readErr
		}
		return 0, io.EOF
	}
	c := f.input[0]
	f.input = f.input[1:]
	return c, nil
}

func (f *fakeConsole) WriteByte(c byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.output.WriteByte(c)
}

// newTestVM returns a machine with program loaded at 0x3000.
func newTestVM(t *testing.T, input string, program ...Word) (*VM, *fakeConsole) {
	t.Helper()

	console := &fakeConsole{input: []byte(input)}
	machine := New(console)
	require.Equal(t, len(program), machine.Memory().Load(UserSpaceStart, program))
	return machine, console
}
