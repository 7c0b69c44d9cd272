package vm

func (cpu *cpu) load(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = cpu.memory.Read(cpu.reg.pc + pcOffset9(instruction))
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) loadIndirect(instruction Word) error {
	dr := destReg(instruction)
	pointer := cpu.memory.Read(cpu.reg.pc + pcOffset9(instruction))
	cpu.reg.general[dr] = cpu.memory.Read(pointer)
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) loadRegister(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = cpu.memory.Read(cpu.baseOffset(instruction))
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) loadEffectiveAddress(instruction Word) error {
	dr := destReg(instruction)
	cpu.reg.general[dr] = cpu.reg.pc + pcOffset9(instruction)
	cpu.updateFlags(dr)
	return nil
}

func (cpu *cpu) store(instruction Word) error {
	cpu.memory.Write(cpu.reg.pc+pcOffset9(instruction), cpu.reg.general[destReg(instruction)])
	return nil
}

func (cpu *cpu) storeIndirect(instruction Word) error {
	pointer := cpu.memory.Read(cpu.reg.pc + pcOffset9(instruction))
	cpu.memory.Write(pointer, cpu.reg.general[destReg(instruction)])
	return nil
}

func (cpu *cpu) storeRegister(instruction Word) error {
	cpu.memory.Write(cpu.baseOffset(instruction), cpu.reg.general[destReg(instruction)])
	return nil
}

// baseOffset is BaseR + offset6, the address used by LDR and STR.
func (cpu *cpu) baseOffset(instruction Word) Word {
	return cpu.reg.general[baseReg(instruction)] + offset6(instruction)
}
