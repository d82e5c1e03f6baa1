// Package instruction implements the column codec's variable-length
// opcode encoding: the seven instruction kinds (two literal forms, Skip,
// Copy, Delta, SetDelta, SetNegDelta), their prefix-continuation numeric
// argument encoding, and a textual disassembler used only by tests.
//
// An instruction is zero or more "prefix bytes" (high bit set) followed by
// exactly one "op byte" (high bit clear). The prefix bytes encode a
// base-128 numeric argument P, most-significant digit first; the op byte's
// upper nibble selects the instruction kind and its lower nibble
// contributes the low 4 bits of the argument (count kinds) or a left-shift
// amount (set-delta kinds). See Parse and Instruction.Append for the exact
// bit layout.
package instruction
