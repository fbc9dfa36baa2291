package main

import "testing"

func parse(t *testing.T, src string) *Node {
	t.Helper()
	tokens, err := NewLexer("t.asm", src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	root, err := NewParser("t.asm", tokens).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return root
}

func TestParseLabelAndEntry(t *testing.T) {
	root := parse(t, "entry _start\n_start:\nret\n")
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d", len(root.Children))
	}
	if root.Children[0].Kind != NodeEntry || root.Children[0].Name != "_start" {
		t.Errorf("entry node = %+v", root.Children[0])
	}
	if root.Children[1].Kind != NodeLabel || root.Children[1].Name != "_start" {
		t.Errorf("label node = %+v", root.Children[1])
	}
	if root.Children[2].Kind != NodeInstr || root.Children[2].Mnemonic != "ret" {
		t.Errorf("instr node = %+v", root.Children[2])
	}
}

func TestParseMovRegisterAndImmediate(t *testing.T) {
	root := parse(t, "mov eax, 1\nmov ebx, eax\n")
	first := root.Children[0]
	if first.Mnemonic != "mov" || len(first.Operands) != 2 {
		t.Fatalf("first instr = %+v", first)
	}
	if first.Operands[0].Kind != OperandRegister || first.Operands[0].Register != EAX {
		t.Errorf("operand 0 = %+v", first.Operands[0])
	}
	if first.Operands[1].Kind != OperandInteger || first.Operands[1].Integer != 1 {
		t.Errorf("operand 1 = %+v", first.Operands[1])
	}

	second := root.Children[1]
	if second.Operands[1].Kind != OperandRegister || second.Operands[1].Register != EAX {
		t.Errorf("second instr operand 1 = %+v", second.Operands[1])
	}
}

func TestParseMemoryOperand(t *testing.T) {
	root := parse(t, "mov [ebp], eax\n")
	instr := root.Children[0]
	dst := instr.Operands[0]
	if dst.Kind != OperandMemory {
		t.Fatalf("expected a memory operand, got %+v", dst)
	}
	if dst.Inner.Kind != OperandRegister || dst.Inner.Register != EBP {
		t.Errorf("inner operand = %+v", dst.Inner)
	}
}

func TestParseDbMixedStringAndByte(t *testing.T) {
	root := parse(t, `db "Hi", 0x0A`+"\n")
	n := root.Children[0]
	if n.Kind != NodeDb {
		t.Fatalf("expected NodeDb, got %+v", n)
	}
	want := []byte{'H', 'i', 0x0A}
	if string(n.Bytes) != string(want) {
		t.Errorf("db bytes = %v, want %v", n.Bytes, want)
	}
}

func TestParseEquExpression(t *testing.T) {
	root := parse(t, "equ L 2 + 2\n")
	n := root.Children[0]
	if n.Kind != NodeEqu || n.Name != "L" {
		t.Fatalf("equ node = %+v", n)
	}
	if n.Expr.Kind != ExprBinOp || n.Expr.Op != '+' {
		t.Fatalf("equ expr = %+v", n.Expr)
	}
}

func TestParseEquDollarAndPrecedence(t *testing.T) {
	root := parse(t, "equ L $ + 2 * 3\n")
	n := root.Children[0]
	top := n.Expr
	if top.Kind != ExprBinOp || top.Op != '+' {
		t.Fatalf("top-level op = %+v", top)
	}
	if top.Left.Kind != ExprDollar {
		t.Errorf("left operand should be $, got %+v", top.Left)
	}
	if top.Right.Kind != ExprBinOp || top.Right.Op != '*' {
		t.Errorf("right operand should be a product, got %+v", top.Right)
	}
}

func TestParseJumpMnemonicOperand(t *testing.T) {
	root := parse(t, "jnz loop\n")
	n := root.Children[0]
	if n.Mnemonic != "jnz" || len(n.Operands) != 1 {
		t.Fatalf("jump node = %+v", n)
	}
	if n.Operands[0].Kind != OperandIdentifier || n.Operands[0].Name != "loop" {
		t.Errorf("jump operand = %+v", n.Operands[0])
	}
}

func TestParseMissingColonErrors(t *testing.T) {
	_, err := NewParser("t.asm", mustTokens(t, "_start\nret\n")).Parse()
	if err == nil {
		t.Errorf("expected a parse error for a bare identifier statement")
	}
}

func mustTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := NewLexer("t.asm", src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return tokens
}
