package vm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type Word uint16

// Register names one of the eight general purpose registers.
type Register uint8

// Flag is the condition code register. Exactly one flag is set.
type Flag uint16

// general purpose registers
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7 // link register
)

// flags
const (
	FLAG_POS Flag = 1 << 0
	FLAG_ZRO Flag = 1 << 1
	FLAG_NEG Flag = 1 << 2
)

func (r Register) String() string {
	return fmt.Sprintf("R%d", uint8(r))
}

func (f Flag) String() string {
	switch f {
	case FLAG_POS:
		return "P"
	case FLAG_ZRO:
		return "Z"
	case FLAG_NEG:
		return "N"
	}
	return fmt.Sprintf("Flag(%03b)", uint16(f))
}

type registers struct {
	general [8]Word
	pc      Word
	cond    Flag
}

type handler func(cpu *cpu, instruction Word) error

// handlers has one entry per opcode, RTI and RES included.
var handlers = [16]handler{
	OP_BR:   (*cpu).branch,
	OP_ADD:  (*cpu).add,
	OP_LD:   (*cpu).load,
	OP_ST:   (*cpu).store,
	OP_JSR:  (*cpu).jumpSubroutine,
	OP_AND:  (*cpu).and,
	OP_LDR:  (*cpu).loadRegister,
	OP_STR:  (*cpu).storeRegister,
	OP_RTI:  (*cpu).illegal,
	OP_NOT:  (*cpu).not,
	OP_LDI:  (*cpu).loadIndirect,
	OP_STI:  (*cpu).storeIndirect,
	OP_JMP:  (*cpu).jump,
	OP_RES:  (*cpu).illegal,
	OP_LEA:  (*cpu).loadEffectiveAddress,
	OP_TRAP: (*cpu).trap,
}

type cpu struct {
	state   State
	memory  *Memory
	reg     registers
	count   uint64
	console Console
	log     *logrus.Logger
}

func newCpu(memory *Memory, console Console, logger *logrus.Logger) *cpu {
	cpu := &cpu{
		memory:  memory,
		console: console,
		log:     logger,
	}
	cpu.reset()
	return cpu
}

func (cpu *cpu) reset() {
	cpu.reg = registers{pc: UserSpaceStart, cond: FLAG_ZRO}
	cpu.count = 0
	cpu.state = Running
}

// step runs one fetch-decode-execute cycle. If the instruction fails the
// register file is put back the way it was before the fetch.
func (cpu *cpu) step() error {
	saved := cpu.reg
	address := cpu.reg.pc

	instruction := cpu.memory.Read(address)
	cpu.reg.pc++
	op := decode(instruction)

	if cpu.log.IsLevelEnabled(logrus.DebugLevel) {
		cpu.trace(address, op, instruction)
	}

	if err := handlers[op](cpu, instruction); err != nil {
		cpu.reg = saved
		return err
	}
	cpu.count++
	return nil
}

func (cpu *cpu) updateFlags(r Register) {
	switch value := cpu.reg.general[r]; {
	case value == 0:
		cpu.reg.cond = FLAG_ZRO
	case value>>15 != 0:
		cpu.reg.cond = FLAG_NEG
	default:
		cpu.reg.cond = FLAG_POS
	}
}

func (cpu *cpu) illegal(instruction Word) error {
	return fmt.Errorf("%w: %s (0x%04x) at 0x%04x",
		ErrIllegalOpcode, decode(instruction), instruction, cpu.reg.pc-1)
}

func (cpu *cpu) trace(address Word, op Opcode, instruction Word) {
	fields := logrus.Fields{
		"pc":          fmt.Sprintf("0x%04x", address),
		"instruction": fmt.Sprintf("0x%04x", instruction),
		"op":          op.String(),
	}

	switch op {
	case OP_ADD, OP_AND:
		fields["dr"] = destReg(instruction)
		fields["sr1"] = baseReg(instruction)
		if immFlag(instruction) {
			fields["imm5"] = int16(imm5(instruction))
		} else {
			fields["sr2"] = srcReg2(instruction)
		}
	case OP_NOT:
		fields["dr"] = destReg(instruction)
		fields["sr"] = baseReg(instruction)
	case OP_BR:
		fields["nzp"] = fmt.Sprintf("%03b", uint16(condMask(instruction)))
		fields["pcoffset9"] = int16(pcOffset9(instruction))
	case OP_JMP:
		fields["br"] = baseReg(instruction)
	case OP_JSR:
		if longFlag(instruction) {
			fields["pcoffset11"] = int16(pcOffset11(instruction))
		} else {
			fields["br"] = baseReg(instruction)
		}
	case OP_LD, OP_LDI, OP_LEA, OP_ST, OP_STI:
		fields["r"] = destReg(instruction)
		fields["pcoffset9"] = int16(pcOffset9(instruction))
	case OP_LDR, OP_STR:
		fields["r"] = destReg(instruction)
		fields["br"] = baseReg(instruction)
		fields["offset6"] = int16(offset6(instruction))
	case OP_TRAP:
		fields["vector"] = fmt.Sprintf("0x%02x", trapVector(instruction))
	}

	cpu.log.WithFields(fields).Debug("execute")
}
