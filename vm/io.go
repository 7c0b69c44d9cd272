package vm

import "io"

// Keyboard is the input side of the console attached to a VM.
type Keyboard interface {
	// Available reports whether a character can be read without blocking.
	Available() bool
	// ReadByte blocks until a character has been typed.
	ReadByte() (byte, error)
}

// Console is all the character I/O the trap routines and the memory mapped
// keyboard registers need. Terminal handling lives with the implementation.
type Console interface {
	Keyboard
	WriteByte(c byte) error
}

// nullConsole never has input and drops all output.
type nullConsole struct{}

func (nullConsole) Available() bool         { return false }
func (nullConsole) ReadByte() (byte, error) { return 0, io.EOF }
func (nullConsole) WriteByte(byte) error    { return nil }
