package vm

func (cpu *cpu) branch(instruction Word) error {
	if condMask(instruction)&cpu.reg.cond != 0 {
		cpu.reg.pc += pcOffset9(instruction)
	}
	return nil
}

// jump also covers RET, which is JMP R7.
func (cpu *cpu) jump(instruction Word) error {
	cpu.reg.pc = cpu.reg.general[baseReg(instruction)]
	return nil
}

func (cpu *cpu) jumpSubroutine(instruction Word) error {
	link := cpu.reg.pc

	if longFlag(instruction) {
		cpu.reg.pc += pcOffset11(instruction)
	} else {
		// JSRR: the base register is read before R7 is overwritten
		cpu.reg.pc = cpu.reg.general[baseReg(instruction)]
	}

	cpu.reg.general[R7] = link
	return nil
}
