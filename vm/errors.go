package vm

import "errors"

var (
	ErrIllegalOpcode = errors.New("illegal opcode")
	ErrUnknownTrap   = errors.New("unknown trap vector")
	ErrImageTooShort = errors.New("image too short")
	ErrNotRunning    = errors.New("machine not running")
)
