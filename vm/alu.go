package vm

func (cpu *cpu) add(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = cpu.reg.general[baseReg(instruction)] + cpu.secondOperand(instruction)
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) and(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = cpu.reg.general[baseReg(instruction)] & cpu.secondOperand(instruction)
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) not(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = ^cpu.reg.general[baseReg(instruction)]
	cpu.updateFlags(dr)
	return nil
}

// secondOperand is imm5 in immediate mode and SR2 otherwise.
func (cpu *cpu) secondOperand(instruction Word) Word {
	if immFlag(instruction) {
		return imm5(instruction)
	}
	return cpu.reg.general[srcReg2(instruction)]
}
