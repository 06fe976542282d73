package kaka

import (
	"strconv"
	"strings"
)

// Sprint renders n as a compact S-expression. The form is stable, so it
// doubles as the canonical shape of a tree in tests and debug logs:
//
//	1 + 2 foo      => (1 + (2 foo))
//	d at: 1 put: x => (d at: 1 put: x)
//	x = @{|a| a}   => (assign x @{|a| (declare a)})
func Sprint(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return Accept[string](n, printer{})
}

// SprintAll renders one statement per line.
func SprintAll(stmts []Statement) string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		lines = append(lines, Sprint(stmt))
	}
	return strings.Join(lines, "\n")
}

type printer struct{}

func (p printer) statements(stmts []Statement) []string {
	out := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		out = append(out, Sprint(stmt))
	}
	return out
}

func (p printer) VisitUnarySend(n *UnarySend) string {
	return "(" + Sprint(n.Receiver) + " " + n.Message.Selector + ")"
}

func (p printer) VisitBinarySend(n *BinarySend) string {
	return "(" + Sprint(n.Receiver) + " " + n.Message.Selector + " " + Sprint(n.Argument) + ")"
}

func (p printer) VisitKeywordSend(n *KeywordSend) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(Sprint(n.Receiver))
	for _, pair := range n.Pairs {
		b.WriteString(" ")
		b.WriteString(Sprint(pair.Keyword))
		b.WriteString(" ")
		b.WriteString(Sprint(pair.Argument))
	}
	b.WriteString(")")
	return b.String()
}

func (p printer) VisitMessage(n *Message) string {
	return n.Selector
}

func (p printer) VisitKeywordMessage(n *KeywordMessage) string {
	return n.Keyword + ":"
}

func (p printer) VisitIdentifier(n *Identifier) string {
	return n.Name
}

func (p printer) VisitIntegerLiteral(n *IntegerLiteral) string {
	return strconv.FormatInt(n.Value, 10)
}

func (p printer) VisitFloatLiteral(n *FloatLiteral) string {
	text := strconv.FormatFloat(n.Value, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eIN") {
		text += ".0"
	}
	return text
}

func (p printer) VisitStringLiteral(n *StringLiteral) string {
	return `"` + n.Value + `"`
}

func (p printer) VisitListLiteral(n *ListLiteral) string {
	parts := make([]string, 0, len(n.Elements))
	for _, elem := range n.Elements {
		parts = append(parts, Sprint(elem))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p printer) VisitMapLiteral(n *MapLiteral) string {
	parts := make([]string, 0, len(n.Entries))
	for _, entry := range n.Entries {
		parts = append(parts, Sprint(entry.Key)+" = "+Sprint(entry.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (p printer) VisitBlockLiteral(n *BlockLiteral) string {
	var b strings.Builder
	b.WriteString("@{")
	if len(n.Params) > 0 {
		names := make([]string, 0, len(n.Params))
		for _, param := range n.Params {
			names = append(names, param.Name)
		}
		b.WriteString("|" + strings.Join(names, ", ") + "|")
		if len(n.Body) > 0 {
			b.WriteString(" ")
		}
	}
	b.WriteString(strings.Join(p.statements(n.Body), ". "))
	b.WriteString("}")
	return b.String()
}

func (p printer) VisitAssignment(n *Assignment) string {
	if n.IsDeclaration() {
		return "(declare " + n.Target.Name + ")"
	}
	return "(assign " + n.Target.Name + " " + Sprint(n.Value) + ")"
}

func (p printer) VisitClassDeclaration(n *ClassDeclaration) string {
	parts := []string{"class", n.Name.Name}
	if n.Parent != nil {
		parts = append(parts, "(parent "+n.Parent.Name+")")
	}
	for _, field := range n.Fields {
		parts = append(parts, Sprint(field))
	}
	for _, method := range n.Methods {
		parts = append(parts, Sprint(method))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (p printer) VisitField(n *Field) string {
	if n.Default == nil {
		return "(field " + n.Name.Name + ")"
	}
	return "(field " + n.Name.Name + " " + Sprint(n.Default) + ")"
}

func (p printer) VisitMethodDef(n *MethodDef) string {
	return "(method " + Sprint(n.Method) + ")"
}

func (p printer) VisitUnaryMethod(n *UnaryMethod) string {
	parts := append([]string{"unary", n.Selector.Selector}, p.statements(n.Body)...)
	return "(" + strings.Join(parts, " ") + ")"
}

func (p printer) VisitBinaryMethod(n *BinaryMethod) string {
	parts := append([]string{"binary", n.Selector.Selector, n.Param.Name}, p.statements(n.Body)...)
	return "(" + strings.Join(parts, " ") + ")"
}

func (p printer) VisitKeywordMethod(n *KeywordMethod) string {
	parts := []string{"keyword"}
	for i, kw := range n.Keywords {
		parts = append(parts, kw.Keyword+":")
		if i < len(n.Params) {
			parts = append(parts, n.Params[i].Name)
		}
	}
	parts = append(parts, p.statements(n.Body)...)
	return "(" + strings.Join(parts, " ") + ")"
}
