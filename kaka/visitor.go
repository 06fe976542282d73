package kaka

import "fmt"

// Visitor has one handler per node kind. Adding a node kind adds a method
// here, so every consumer stops compiling until it handles the new kind.
type Visitor[R any] interface {
	VisitUnarySend(*UnarySend) R
	VisitBinarySend(*BinarySend) R
	VisitKeywordSend(*KeywordSend) R
	VisitMessage(*Message) R
	VisitKeywordMessage(*KeywordMessage) R
	VisitIdentifier(*Identifier) R
	VisitIntegerLiteral(*IntegerLiteral) R
	VisitFloatLiteral(*FloatLiteral) R
	VisitStringLiteral(*StringLiteral) R
	VisitListLiteral(*ListLiteral) R
	VisitMapLiteral(*MapLiteral) R
	VisitBlockLiteral(*BlockLiteral) R
	VisitAssignment(*Assignment) R
	VisitClassDeclaration(*ClassDeclaration) R
	VisitField(*Field) R
	VisitMethodDef(*MethodDef) R
	VisitUnaryMethod(*UnaryMethod) R
	VisitBinaryMethod(*BinaryMethod) R
	VisitKeywordMethod(*KeywordMethod) R
}

// Accept dispatches n to the matching handler of v.
func Accept[R any](n Node, v Visitor[R]) R {
	switch n := n.(type) {
	case *UnarySend:
		return v.VisitUnarySend(n)
	case *BinarySend:
		return v.VisitBinarySend(n)
	case *KeywordSend:
		return v.VisitKeywordSend(n)
	case *Message:
		return v.VisitMessage(n)
	case *KeywordMessage:
		return v.VisitKeywordMessage(n)
	case *Identifier:
		return v.VisitIdentifier(n)
	case *IntegerLiteral:
		return v.VisitIntegerLiteral(n)
	case *FloatLiteral:
		return v.VisitFloatLiteral(n)
	case *StringLiteral:
		return v.VisitStringLiteral(n)
	case *ListLiteral:
		return v.VisitListLiteral(n)
	case *MapLiteral:
		return v.VisitMapLiteral(n)
	case *BlockLiteral:
		return v.VisitBlockLiteral(n)
	case *Assignment:
		return v.VisitAssignment(n)
	case *ClassDeclaration:
		return v.VisitClassDeclaration(n)
	case *Field:
		return v.VisitField(n)
	case *MethodDef:
		return v.VisitMethodDef(n)
	case *UnaryMethod:
		return v.VisitUnaryMethod(n)
	case *BinaryMethod:
		return v.VisitBinaryMethod(n)
	case *KeywordMethod:
		return v.VisitKeywordMethod(n)
	default:
		panic(fmt.Sprintf("kaka: unknown node %T", n))
	}
}

// Inspect walks the tree rooted at n in pre-order. When fn returns false the
// children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Accept[[]Node](n, childrenVisitor{}) {
		Inspect(child, fn)
	}
}

type childrenVisitor struct{}

func statementNodes(stmts []Statement) []Node {
	nodes := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, stmt)
	}
	return nodes
}

func (childrenVisitor) VisitUnarySend(n *UnarySend) []Node {
	return []Node{n.Receiver, n.Message}
}

func (childrenVisitor) VisitBinarySend(n *BinarySend) []Node {
	return []Node{n.Receiver, n.Message, n.Argument}
}

func (childrenVisitor) VisitKeywordSend(n *KeywordSend) []Node {
	nodes := []Node{n.Receiver}
	for _, pair := range n.Pairs {
		nodes = append(nodes, pair.Keyword, pair.Argument)
	}
	return nodes
}

func (childrenVisitor) VisitMessage(*Message) []Node               { return nil }
func (childrenVisitor) VisitKeywordMessage(*KeywordMessage) []Node { return nil }
func (childrenVisitor) VisitIdentifier(*Identifier) []Node         { return nil }
func (childrenVisitor) VisitIntegerLiteral(*IntegerLiteral) []Node { return nil }
func (childrenVisitor) VisitFloatLiteral(*FloatLiteral) []Node     { return nil }
func (childrenVisitor) VisitStringLiteral(*StringLiteral) []Node   { return nil }

func (childrenVisitor) VisitListLiteral(n *ListLiteral) []Node {
	nodes := make([]Node, 0, len(n.Elements))
	for _, elem := range n.Elements {
		nodes = append(nodes, elem)
	}
	return nodes
}

func (childrenVisitor) VisitMapLiteral(n *MapLiteral) []Node {
	nodes := make([]Node, 0, 2*len(n.Entries))
	for _, entry := range n.Entries {
		nodes = append(nodes, entry.Key, entry.Value)
	}
	return nodes
}

func (childrenVisitor) VisitBlockLiteral(n *BlockLiteral) []Node {
	nodes := make([]Node, 0, len(n.Params)+len(n.Body))
	for _, param := range n.Params {
		nodes = append(nodes, param)
	}
	return append(nodes, statementNodes(n.Body)...)
}

func (childrenVisitor) VisitAssignment(n *Assignment) []Node {
	if n.Value == nil {
		return []Node{n.Target}
	}
	return []Node{n.Target, n.Value}
}

func (childrenVisitor) VisitClassDeclaration(n *ClassDeclaration) []Node {
	nodes := []Node{n.Name}
	if n.Parent != nil {
		nodes = append(nodes, n.Parent)
	}
	for _, field := range n.Fields {
		nodes = append(nodes, field)
	}
	for _, method := range n.Methods {
		nodes = append(nodes, method)
	}
	return nodes
}

func (childrenVisitor) VisitField(n *Field) []Node {
	if n.Default == nil {
		return []Node{n.Name}
	}
	return []Node{n.Name, n.Default}
}

func (childrenVisitor) VisitMethodDef(n *MethodDef) []Node {
	return []Node{n.Method}
}

func (childrenVisitor) VisitUnaryMethod(n *UnaryMethod) []Node {
	return append([]Node{n.Selector}, statementNodes(n.Body)...)
}

func (childrenVisitor) VisitBinaryMethod(n *BinaryMethod) []Node {
	return append([]Node{n.Selector, n.Param}, statementNodes(n.Body)...)
}

func (childrenVisitor) VisitKeywordMethod(n *KeywordMethod) []Node {
	var nodes []Node
	for i, kw := range n.Keywords {
		nodes = append(nodes, kw)
		if i < len(n.Params) {
			nodes = append(nodes, n.Params[i])
		}
	}
	return append(nodes, statementNodes(n.Body)...)
}
