package vm

import "fmt"

const (
	TRAP_GETC  Word = 0x20 /* get character from keyboard, not echoed onto the terminal */
	TRAP_OUT   Word = 0x21 /* output a character */
	TRAP_PUTS  Word = 0x22 /* output a word string */
	TRAP_IN    Word = 0x23 /* get character from keyboard, echoed onto the terminal */
	TRAP_PUTSP Word = 0x24 /* output a byte string */
	TRAP_HALT  Word = 0x25 /* halt the program */
)

const (
	inPrompt   = "Enter a character: "
	haltNotice = "HALT\n"
)

type trapRoutine struct {
	name string
	run  func(cpu *cpu) error
}

var traps = map[Word]trapRoutine{
	TRAP_GETC:  {"GETC", (*cpu).getc},
	TRAP_OUT:   {"OUT", (*cpu).out},
	TRAP_PUTS:  {"PUTS", (*cpu).puts},
	TRAP_IN:    {"IN", (*cpu).in},
	TRAP_PUTSP: {"PUTSP", (*cpu).putsp},
	TRAP_HALT:  {"HALT", (*cpu).halt},
}

// trap saves the return address in R7 and runs the routine for the
// instruction's trap vector.
func (cpu *cpu) trap(instruction Word) error {
	address := cpu.reg.pc - 1
	vector := trapVector(instruction)

	routine, ok := traps[vector]
	if !ok {
		return fmt.Errorf("%w: 0x%02x at 0x%04x", ErrUnknownTrap, vector, address)
	}

	cpu.reg.general[R7] = cpu.reg.pc
	if err := routine.run(cpu); err != nil {
		return fmt.Errorf("trap %s at 0x%04x: %w", routine.name, address, err)
	}
	return nil
}

func (cpu *cpu) getc() error {
	c, err := cpu.console.ReadByte()
	if err != nil {
		return err
	}
	cpu.reg.general[R0] = Word(c)
	cpu.updateFlags(R0)
	return nil
}

func (cpu *cpu) out() error {
	return cpu.console.WriteByte(byte(cpu.reg.general[R0]))
}

func (cpu *cpu) puts() error {
	for addr := cpu.reg.general[R0]; ; addr++ {
		c := cpu.memory.Read(addr)
		if c == 0 {
			return nil
		}
		if err := cpu.console.WriteByte(byte(c)); err != nil {
			return err
		}
	}
}

func (cpu *cpu) in() error {
	if err := cpu.writeString(inPrompt); err != nil {
		return err
	}

	c, err := cpu.console.ReadByte()
	if err != nil {
		return err
	}
	if err := cpu.console.WriteByte(c); err != nil {
		return err
	}

	cpu.reg.general[R0] = Word(c)
	cpu.updateFlags(R0)
	return nil
}

// putsp prints two characters per word, low byte first. A zero high byte
// ends an odd length string.
func (cpu *cpu) putsp() error {
	for addr := cpu.reg.general[R0]; ; addr++ {
		w := cpu.memory.Read(addr)
		if w == 0 {
			return nil
		}
		if err := cpu.console.WriteByte(byte(w)); err != nil {
			return err
		}
		if high := byte(w >> 8); high != 0 {
			if err := cpu.console.WriteByte(high); err != nil {
				return err
			}
		}
	}
}

func (cpu *cpu) halt() error {
	if err := cpu.writeString(haltNotice); err != nil {
		return err
	}
	cpu.state = Halted
	return nil
}

func (cpu *cpu) writeString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := cpu.console.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}
