package ir

import (
	"fmt"
	"strconv"
	"strings"
)

func PrintIR(ir []Instruction) {
	fmt.Print(IrFmt(ir))
}

// IrFmt returns the instructions one per line. Labels are unindented, all
// other instructions are indented by two spaces.
func IrFmt(ir []Instruction) string {
	sb := strings.Builder{}

	for _, ins := range ir {
		if ins.Op == LABEL {
			fmt.Fprintf(&sb, "L%d:\n", ins.Label)
			continue
		}

		sb.WriteString("  ")
		switch ins.Op {
		case DECL:
			fmt.Fprintf(&sb, "DECL $%d %s %s\n", ins.Slot, ins.Name, ins.Type)
		case PUSH:
			fmt.Fprintf(&sb, "PUSH %s %s\n", ins.Value, ins.Type)
		case LOAD:
			fmt.Fprintf(&sb, "LOAD $%d %s\n", ins.Slot, ins.Type)
		case OP:
			fmt.Fprintf(&sb, "OP %s %s\n", ins.Oper, ins.Type)
		case STORE:
			fmt.Fprintf(&sb, "STORE $%d\n", ins.Slot)
		case JMPF:
			fmt.Fprintf(&sb, "JMPF L%d\n", ins.Label)
		case JMP:
			fmt.Fprintf(&sb, "JMP L%d\n", ins.Label)
		case RET:
			if ins.HasValue {
				fmt.Fprintf(&sb, "RET %s\n", ins.Type)
			} else {
				sb.WriteString("RET\n")
			}
		case PRINT:
			fmt.Fprintf(&sb, "PRINT $%d %s\n", ins.Slot, ins.Type)
		default:
			sb.WriteString("NOP\n")
		}
	}

	return sb.String()
}

func (v Value) String() string {
	switch v.Kind {
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(v.Bool)
	}
	return strconv.FormatUint(v.Int, 10)
}
