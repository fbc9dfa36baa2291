// Completion: 100% - AST-to-Program code generator complete
package main

// CodeGenerator walks the parsed AST and lowers it into a Program: one
// forward pass that opens a new Block at every label, appends lowered
// Instructions to whichever block is currently open, and tracks a
// running cursor so `$` and backward label references in EQU
// expressions resolve without a second pass (spec.md §4.4, §9).
type CodeGenerator struct {
	file string

	program      *Program
	equates      map[string]uint32
	definedLabels map[string]struct{}
	labelAddrs   map[string]Addr

	cursor       Addr
	currentBlock int
}

func NewCodeGenerator(file string) *CodeGenerator {
	loadOffset := Addr{FileOffset: elfHeaderLen + elfPhdrLen, VAddr: elfLoadVAddr + elfHeaderLen + elfPhdrLen}
	program := NewProgram()
	program.LoadOffset = loadOffset
	cg := &CodeGenerator{
		file:          file,
		program:       program,
		equates:       make(map[string]uint32),
		definedLabels: make(map[string]struct{}),
		labelAddrs:    make(map[string]Addr),
		cursor:        loadOffset,
	}
	cg.definedLabels[program.EntryLabel] = struct{}{}
	cg.labelAddrs[program.EntryLabel] = loadOffset
	cg.currentBlock = program.NewBlock(program.EntryLabel)
	return cg
}

// Generate consumes the program-level AST node and returns the
// resulting Program, or the first CompilerError encountered.
func (cg *CodeGenerator) Generate(root *Node) (*Program, error) {
	for _, n := range root.Children {
		if err := cg.genNode(n); err != nil {
			return nil, err
		}
	}
	return cg.program, nil
}

func (cg *CodeGenerator) genNode(n *Node) error {
	switch n.Kind {
	case NodeLabel:
		return cg.genLabel(n)
	case NodeEntry:
		cg.program.EntryLabel = n.Name
		return nil
	case NodeEqu:
		return cg.genEqu(n)
	case NodeDS, NodeDb, NodeDw, NodeDl:
		instr, err := cg.lowerData(n)
		if err != nil {
			return err
		}
		cg.pushInstr(instr)
		return nil
	case NodeInstr:
		instr, err := cg.lowerInstr(n)
		if err != nil {
			return err
		}
		cg.pushInstr(instr)
		return nil
	default:
		return nil
	}
}

// genLabel rejects redefinition and equate/label name collisions —
// the resolution spec.md's Open Question (a) leaves open; this repo
// resolves it by rejecting the collision with a diagnostic rather than
// letting one silently shadow the other.
func (cg *CodeGenerator) genLabel(n *Node) error {
	if _, exists := cg.definedLabels[n.Name]; exists {
		return newCodeGenError(cg.file, n.Line, "label %q is already defined", n.Name)
	}
	if _, exists := cg.equates[n.Name]; exists {
		return newCodeGenError(cg.file, n.Line, "label %q collides with an equate of the same name", n.Name)
	}
	cg.definedLabels[n.Name] = struct{}{}
	cg.labelAddrs[n.Name] = cg.cursor
	cg.currentBlock = cg.program.NewBlock(n.Name)
	return nil
}

func (cg *CodeGenerator) genEqu(n *Node) error {
	if _, exists := cg.equates[n.Name]; exists {
		return newCodeGenError(cg.file, n.Line, "equate %q is already defined", n.Name)
	}
	if _, exists := cg.definedLabels[n.Name]; exists {
		return newCodeGenError(cg.file, n.Line, "equate %q collides with a label of the same name", n.Name)
	}
	v, err := cg.evalExpr(n.Expr)
	if err != nil {
		return err
	}
	cg.equates[n.Name] = uint32(v)
	return nil
}

// ensureBlock returns the currently open block. NewCodeGenerator always
// opens a leading "__entry_point__" block up front, so code or data that
// appears before the first user label lands there.
func (cg *CodeGenerator) ensureBlock() int {
	return cg.currentBlock
}

func (cg *CodeGenerator) pushInstr(instr Instruction) {
	idx := cg.ensureBlock()
	cg.program.Blocks[idx].Push(instr)
	cg.cursor = cg.cursor.Add(uint64(instr.Len()))
}

// evalExpr implements operator-precedence evaluation over the EQU
// expression grammar. Identifiers resolve against already-defined
// equates and already-placed labels only: EQU evaluates immediately,
// and a forward label's address isn't known until its own block opens.
func (cg *CodeGenerator) evalExpr(e *ExprNode) (uint64, error) {
	switch e.Kind {
	case ExprInteger:
		return e.Value, nil
	case ExprDollar:
		return cg.cursor.VAddr, nil
	case ExprIdentifier:
		if v, ok := cg.equates[e.Name]; ok {
			return uint64(v), nil
		}
		if addr, ok := cg.labelAddrs[e.Name]; ok {
			return addr.VAddr, nil
		}
		return 0, newCodeGenError(cg.file, e.Line, "undefined identifier %q in constant expression", e.Name)
	case ExprBinOp:
		l, err := cg.evalExpr(e.Left)
		if err != nil {
			return 0, err
		}
		r, err := cg.evalExpr(e.Right)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, newCodeGenError(cg.file, e.Line, "division by zero in constant expression")
			}
			return l / r, nil
		default:
			return 0, newCodeGenError(cg.file, e.Line, "unknown operator %q in constant expression", e.Op)
		}
	default:
		return 0, newCodeGenError(cg.file, e.Line, "malformed constant expression")
	}
}

func (cg *CodeGenerator) lowerData(n *Node) (Instruction, error) {
	switch n.Kind {
	case NodeDb:
		return NewRawData(n.Bytes), nil
	case NodeDw:
		var out []byte
		for _, w := range n.Words {
			b := dumpWord(w, LittleEndian)
			out = append(out, b[:]...)
		}
		return NewRawData(out), nil
	case NodeDl:
		var out []byte
		for _, d := range n.Dwords {
			b := dumpDword(d, LittleEndian)
			out = append(out, b[:]...)
		}
		return NewRawData(out), nil
	case NodeDS:
		return NewRawData(make([]byte, n.Size)), nil
	default:
		return Instruction{}, newCodeGenError(cg.file, n.Line, "not a data directive")
	}
}

func operandRegister(op Operand) (Register, bool) {
	if op.Kind != OperandRegister {
		return Register{}, false
	}
	return op.Register, true
}

// resolveSymbolicOperand resolves an identifier operand against the
// equate table: if it names a known equate, the identifier is replaced
// by its numeric value, losing its symbolic identity; otherwise it is
// carried through as a Pointer (memory references and absolute-address
// immediates) or a RelPointer (jump/call targets) for later resolution
// against the program's labels (spec.md §4.5).
func (cg *CodeGenerator) resolveSymbolicOperand(name string, relative bool) Value {
	if v, ok := cg.equates[name]; ok {
		return NewUInt(v)
	}
	if relative {
		return NewRelPointer(name)
	}
	return NewPointer(name)
}

// immediateValue builds a width-matched Value for reg, rejecting a raw
// constant that doesn't fit (spec.md §7.2's immediate-overflow error).
func (cg *CodeGenerator) immediateValue(reg Register, raw uint64, line int) (Value, error) {
	if !reg.FitsImmediate(raw) {
		return Value{}, newCodeGenError(cg.file, line, "immediate value %d does not fit in %d-bit register %%%s", raw, reg.Bits, reg.Name)
	}
	switch reg.Bits {
	case 8:
		return NewUByte(uint8(raw)), nil
	case 16:
		return NewUShort(uint16(raw)), nil
	default:
		return NewUInt(uint32(raw)), nil
	}
}

func (cg *CodeGenerator) lowerInstr(n *Node) (Instruction, error) {
	m := n.Mnemonic
	ops := n.Operands
	line := n.Line

	if cond, ok := jumpMnemonicCondition(m); ok {
		return cg.lowerJump(cond, ops, line)
	}

	switch m {
	case "mov":
		return cg.lowerMov(ops, line)
	case "add":
		return cg.lowerArithRegRegOrImmediate(m, ops, line, NewAddRegReg, NewAddImmediate)
	case "sub":
		return cg.lowerArithRegRegOrImmediate(m, ops, line, NewSubRegReg, NewSubImmediate)
	case "cmp":
		return cg.lowerArithRegRegOrImmediate(m, ops, line, NewCmpRegReg, NewCmpImmediate)
	case "and":
		return cg.lowerArithRegReg(m, ops, line, NewAndRegReg)
	case "or":
		return cg.lowerArithRegReg(m, ops, line, NewOrRegReg)
	case "xor":
		return cg.lowerArithRegReg(m, ops, line, NewXorRegReg)
	case "inc":
		return cg.lowerSingleRegister(m, ops, line, NewInc)
	case "dec":
		return cg.lowerSingleRegister(m, ops, line, NewDec)
	case "mul":
		return cg.lowerSingleRegister(m, ops, line, NewMul)
	case "div":
		return cg.lowerSingleRegister(m, ops, line, NewDiv)
	case "not":
		return cg.lowerSingleRegister(m, ops, line, NewNot)
	case "neg":
		return cg.lowerSingleRegister(m, ops, line, NewNeg)
	case "bswap":
		return cg.lowerSingleRegister(m, ops, line, NewByteSwap)
	case "push":
		return cg.lowerSingleRegister(m, ops, line, NewPush)
	case "pop":
		return cg.lowerSingleRegister(m, ops, line, NewPop)
	case "shl":
		return cg.lowerShift(m, ops, line, NewShl)
	case "shr":
		return cg.lowerShift(m, ops, line, NewShr)
	case "ret":
		if len(ops) != 0 {
			return Instruction{}, newCodeGenError(cg.file, line, "ret takes no operands")
		}
		return NewReturn(), nil
	case "call":
		return cg.lowerCall(ops, line)
	case "int":
		return cg.lowerInt(ops, line)
	default:
		return Instruction{}, newCodeGenError(cg.file, line, "unknown mnemonic %q", m)
	}
}

func (cg *CodeGenerator) lowerJump(cond JumpCondition, ops []Operand, line int) (Instruction, error) {
	if len(ops) != 1 || ops[0].Kind != OperandIdentifier {
		return Instruction{}, newCodeGenError(cg.file, line, "a jump requires a single label operand")
	}
	return NewJump(cond, cg.resolveSymbolicOperand(ops[0].Name, true)), nil
}

func (cg *CodeGenerator) lowerMov(ops []Operand, line int) (Instruction, error) {
	if len(ops) != 2 {
		return Instruction{}, newCodeGenError(cg.file, line, "mov requires exactly two operands")
	}
	dst, src := ops[0], ops[1]

	switch {
	case dst.Kind == OperandRegister && src.Kind == OperandRegister:
		return NewMovRegReg(dst.Register, src.Register), nil

	case dst.Kind == OperandRegister && src.Kind == OperandInteger:
		v, err := cg.immediateValue(dst.Register, src.Integer, line)
		if err != nil {
			return Instruction{}, err
		}
		return NewMovImmediate(dst.Register, v), nil

	case dst.Kind == OperandRegister && src.Kind == OperandIdentifier:
		if v, ok := cg.equates[src.Name]; ok {
			val, err := cg.immediateValue(dst.Register, uint64(v), line)
			if err != nil {
				return Instruction{}, err
			}
			return NewMovImmediate(dst.Register, val), nil
		}
		if dst.Register.Bits != 32 {
			return Instruction{}, newCodeGenError(cg.file, line, "only a 32-bit register can hold an address (got %%%s)", dst.Register.Name)
		}
		return NewMovImmediate(dst.Register, NewPointer(src.Name)), nil

	case dst.Kind == OperandRegister && src.Kind == OperandMemory:
		return cg.lowerMovFromMemory(dst.Register, *src.Inner, line)

	case dst.Kind == OperandMemory && src.Kind == OperandRegister:
		return cg.lowerMovToMemory(*dst.Inner, src.Register, line)

	default:
		return Instruction{}, newCodeGenError(cg.file, line, "unsupported mov operand combination")
	}
}

func (cg *CodeGenerator) lowerMovFromMemory(dst Register, inner Operand, line int) (Instruction, error) {
	switch inner.Kind {
	case OperandRegister:
		return NewMovFromMemReg(dst, inner.Register), nil
	case OperandIdentifier:
		return NewMovFromMemory(dst, cg.resolveSymbolicOperand(inner.Name, false)), nil
	case OperandInteger:
		return NewMovFromMemory(dst, NewUInt(uint32(inner.Integer))), nil
	default:
		return Instruction{}, newCodeGenError(cg.file, line, "unsupported memory operand")
	}
}

func (cg *CodeGenerator) lowerMovToMemory(inner Operand, src Register, line int) (Instruction, error) {
	switch inner.Kind {
	case OperandRegister:
		return NewMovMemReg(inner.Register, src), nil
	case OperandIdentifier:
		return NewMovMemory(cg.resolveSymbolicOperand(inner.Name, false), src), nil
	case OperandInteger:
		return NewMovMemory(NewUInt(uint32(inner.Integer)), src), nil
	default:
		return Instruction{}, newCodeGenError(cg.file, line, "unsupported memory operand")
	}
}

func (cg *CodeGenerator) lowerArithRegReg(mnemonic string, ops []Operand, line int, ctor func(dst, src Register) Instruction) (Instruction, error) {
	if len(ops) != 2 {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires exactly two operands", mnemonic)
	}
	dst, ok := operandRegister(ops[0])
	if !ok {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register destination", mnemonic)
	}
	src, ok := operandRegister(ops[1])
	if !ok {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register source", mnemonic)
	}
	return ctor(dst, src), nil
}

func (cg *CodeGenerator) lowerArithRegRegOrImmediate(mnemonic string, ops []Operand, line int, regregCtor func(dst, src Register) Instruction, immCtor func(reg Register, val Value) Instruction) (Instruction, error) {
	if len(ops) != 2 {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires exactly two operands", mnemonic)
	}
	dst, ok := operandRegister(ops[0])
	if !ok {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register destination", mnemonic)
	}
	switch ops[1].Kind {
	case OperandRegister:
		return regregCtor(dst, ops[1].Register), nil
	case OperandInteger:
		v, err := cg.immediateValue(dst, ops[1].Integer, line)
		if err != nil {
			return Instruction{}, err
		}
		return immCtor(dst, v), nil
	case OperandIdentifier:
		ev, ok := cg.equates[ops[1].Name]
		if !ok {
			if dst.Bits != 32 {
				return Instruction{}, newCodeGenError(cg.file, line, "only a 32-bit register can take an address (got %%%s)", dst.Name)
			}
			return immCtor(dst, NewPointer(ops[1].Name)), nil
		}
		v, err := cg.immediateValue(dst, uint64(ev), line)
		if err != nil {
			return Instruction{}, err
		}
		return immCtor(dst, v), nil
	default:
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register or immediate second operand", mnemonic)
	}
}

func (cg *CodeGenerator) lowerSingleRegister(mnemonic string, ops []Operand, line int, ctor func(Register) Instruction) (Instruction, error) {
	if len(ops) != 1 {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires exactly one operand", mnemonic)
	}
	reg, ok := operandRegister(ops[0])
	if !ok {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register operand", mnemonic)
	}
	return ctor(reg), nil
}

func (cg *CodeGenerator) lowerShift(mnemonic string, ops []Operand, line int, ctor func(Register, uint8) Instruction) (Instruction, error) {
	if len(ops) != 2 {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires exactly two operands", mnemonic)
	}
	reg, ok := operandRegister(ops[0])
	if !ok {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires a register first operand", mnemonic)
	}
	if ops[1].Kind != OperandInteger {
		return Instruction{}, newCodeGenError(cg.file, line, "%s requires an immediate shift count", mnemonic)
	}
	if ops[1].Integer > 0xFF {
		return Instruction{}, newCodeGenError(cg.file, line, "shift count %d does not fit in a byte", ops[1].Integer)
	}
	return ctor(reg, uint8(ops[1].Integer)), nil
}

func (cg *CodeGenerator) lowerCall(ops []Operand, line int) (Instruction, error) {
	if len(ops) != 1 {
		return Instruction{}, newCodeGenError(cg.file, line, "call requires exactly one operand")
	}
	switch ops[0].Kind {
	case OperandRegister:
		return NewCallRegister(ops[0].Register), nil
	case OperandIdentifier:
		return NewCall(cg.resolveSymbolicOperand(ops[0].Name, true)), nil
	default:
		return Instruction{}, newCodeGenError(cg.file, line, "call requires a register or label operand")
	}
}

func (cg *CodeGenerator) lowerInt(ops []Operand, line int) (Instruction, error) {
	if len(ops) != 1 || ops[0].Kind != OperandInteger {
		return Instruction{}, newCodeGenError(cg.file, line, "int requires a single immediate operand")
	}
	if ops[0].Integer > 0xFF {
		return Instruction{}, newCodeGenError(cg.file, line, "interrupt vector %d does not fit in a byte", ops[0].Integer)
	}
	return NewInt(uint8(ops[0].Integer)), nil
}
