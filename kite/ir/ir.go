package ir

import (
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/types"
)

type OpCode int

const (
	NOP OpCode = iota

	DECL  // Reserve slot for variable
	PUSH  // Push constant
	LOAD  // Push variable
	OP    // Apply operator to top of stack
	STORE // Pop into variable
	JMPF  // Pop bool and jump if false
	JMP
	LABEL
	RET
	PRINT
)

// Instruction is a single operation on an implicit value stack. Which fields
// are set depends on the opcode.
type Instruction struct {
	Op OpCode

	Name  string     // DECL, LOAD, STORE, PRINT
	Slot  int        // DECL, LOAD, STORE, PRINT
	Type  types.Type // DECL, PUSH, LOAD, OP, PRINT, RET with value
	Value Value      // PUSH
	Oper  ast.Op     // OP
	Label int        // JMPF, JMP, LABEL

	HasValue bool // RET
}

type ValueKind int

const (
	Int ValueKind = iota
	Float
	Bool
)

// Value is a constant operand.
type Value struct {
	Kind ValueKind

	Int   uint64
	Float float64
	Bool  bool
}
