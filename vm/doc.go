// Package vm simulates the LC-3, a 16 bit word addressed computer with eight
// general purpose registers, a program counter and N/Z/P condition codes.
//
// A VM loads program images into its 64K word memory and runs them one
// fetch-decode-execute cycle at a time, starting at 0x3000. Character I/O
// goes through a Console, both for the console traps (GETC, OUT, PUTS, IN,
// PUTSP, HALT) and for the memory mapped keyboard registers KBSR and KBDR.
package vm
