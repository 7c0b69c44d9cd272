package vm

const MemorySize = 1 << 16

const (
	TrapVectorTableStart       = 0x0000
	InterruptVectorTableStart  = 0x0100
	SystemSpaceStart           = 0x0200
	UserSpaceStart             = 0x3000
	MemoryMappedRegistersStart = 0xFE00
)

// memory mapped register addresses
const (
	KBSR Word = MemoryMappedRegistersStart          /* keyboard status register */
	KBDR Word = MemoryMappedRegistersStart + 0x0002 /* keyboard data register */
)

const keyboardReady Word = 1 << 15

// Memory is the 64K word address space. Every Word is a valid address.
type Memory struct {
	cells    [MemorySize]Word
	keyboard Keyboard
}

// NewMemory returns zeroed memory whose KBSR/KBDR registers are backed by
// keyboard. A nil keyboard never has a character ready.
func NewMemory(keyboard Keyboard) *Memory {
	return &Memory{keyboard: keyboard}
}

// Read returns the word at addr. Reading KBSR polls the keyboard and
// refreshes KBSR and KBDR before the value is returned.
func (mem *Memory) Read(addr Word) Word {
	if addr == KBSR {
		mem.pollKeyboard()
	}
	return mem.cells[addr]
}

// Write stores value at addr. Writes never touch the keyboard.
func (mem *Memory) Write(addr, value Word) {
	mem.cells[addr] = value
}

// Load copies words into memory starting at origin and returns how many
// were stored. Words past 0xFFFF are dropped.
func (mem *Memory) Load(origin Word, words []Word) int {
	return copy(mem.cells[origin:], words)
}

func (mem *Memory) pollKeyboard() {
	if mem.keyboard != nil && mem.keyboard.Available() {
		if c, err := mem.keyboard.ReadByte(); err == nil {
			mem.cells[KBSR] = keyboardReady
			mem.cells[KBDR] = Word(c)
			return
		}
	}
	mem.cells[KBSR] = 0
}
