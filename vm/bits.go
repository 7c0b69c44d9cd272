package vm

// sext treats the low bitCount bits of x as a two's complement number and
// widens it to a full word.
func sext(x Word, bitCount uint) Word {
	x &= 1<<bitCount - 1
	if (x>>(bitCount-1))&0b1 != 0 {
		x |= 0xFFFF << bitCount
	}
	return x
}

// destReg is the DR/SR field at bits 9-11.
func destReg(instruction Word) Register {
	return Register((instruction >> 9) & 0b111)
}

// baseReg is the SR1/BaseR field at bits 6-8.
func baseReg(instruction Word) Register {
	return Register((instruction >> 6) & 0b111)
}

func srcReg2(instruction Word) Register {
	return Register(instruction & 0b111)
}

func condMask(instruction Word) Flag {
	return Flag((instruction >> 9) & 0b111)
}

func immFlag(instruction Word) bool {
	return (instruction>>5)&0b1 == 1
}

func longFlag(instruction Word) bool {
	return (instruction>>11)&0b1 == 1
}

func imm5(instruction Word) Word       { return sext(instruction, 5) }
func offset6(instruction Word) Word    { return sext(instruction, 6) }
func pcOffset9(instruction Word) Word  { return sext(instruction, 9) }
func pcOffset11(instruction Word) Word { return sext(instruction, 11) }

func trapVector(instruction Word) Word {
	return instruction & 0xFF
}
