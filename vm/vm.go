package vm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// State is the run state of a VM.
type State uint8

const (
	Running State = iota
	Halted        // stopped by the HALT trap
	Faulted       // stopped by an illegal instruction or a failed trap
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// VM is one LC-3 machine: its memory, its register file and the console it
// talks to. A VM is not safe for concurrent use.
type VM struct {
	memory *Memory
	cpu    *cpu
	log    *logrus.Logger
}

// Option configures a VM created by New.
type Option func(*options)

type options struct {
	logger *logrus.Logger
}

// WithLogger sets the logger. Executed instructions are logged at debug
// level.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New returns a machine with zeroed memory, PC at 0x3000 and the Z flag set.
// A nil console has no input and discards output.
func New(console Console, opts ...Option) *VM {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.New()
		o.logger.SetOutput(io.Discard)
	}
	if console == nil {
		console = nullConsole{}
	}

	mem := NewMemory(console)
	return &VM{
		memory: mem,
		cpu:    newCpu(mem, console, o.logger),
		log:    o.logger,
	}
}

// Run executes instructions until the machine halts, fails or ctx is done.
// The context is only checked between instructions. It returns nil after
// HALT and ctx.Err() on cancellation, in which case the machine can be run
// again.
func (vm *VM) Run(ctx context.Context) error {
	if vm.cpu.state != Running {
		return ErrNotRunning
	}

	for vm.cpu.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction. A failed instruction leaves the
// registers as they were and moves the machine to Faulted, unless it failed
// because a console read was cancelled.
func (vm *VM) Step() error {
	if vm.cpu.state != Running {
		return ErrNotRunning
	}

	err := vm.cpu.step()
	if err != nil && !isCancellation(err) {
		vm.cpu.state = Faulted
	}
	return err
}

// Reset puts the registers and the run state back to their power-on values.
// Memory is kept.
func (vm *VM) Reset() {
	vm.cpu.reset()
}

func (vm *VM) Memory() *Memory {
	return vm.memory
}

func (vm *VM) Register(r Register) Word {
	return vm.cpu.reg.general[r&0b111]
}

func (vm *VM) SetRegister(r Register, value Word) {
	vm.cpu.reg.general[r&0b111] = value
}

func (vm *VM) PC() Word {
	return vm.cpu.reg.pc
}

func (vm *VM) SetPC(pc Word) {
	vm.cpu.reg.pc = pc
}

func (vm *VM) Cond() Flag {
	return vm.cpu.reg.cond
}

func (vm *VM) State() State {
	return vm.cpu.state
}

// Cycles returns the number of instructions that have completed.
func (vm *VM) Cycles() uint64 {
	return vm.cpu.count
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
