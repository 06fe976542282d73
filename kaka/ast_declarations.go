package kaka

import (
	"fmt"
	"strings"
)

// Assignment binds Target to Value. A nil Value marks a bare declaration.
type Assignment struct {
	Target   *Identifier
	Value    Expression
	position Position
}

func (s *Assignment) node()         {}
func (s *Assignment) stmtNode()     {}
func (s *Assignment) Pos() Position { return s.position }

func (s *Assignment) IsDeclaration() bool {
	return s.Value == nil
}

// ClassDeclaration lists fields and methods in declaration order. Names are
// unique within one class.
type ClassDeclaration struct {
	Name     *Identifier
	Parent   *Identifier
	Fields   []*Field
	Methods  []*MethodDef
	position Position
}

func (s *ClassDeclaration) node()         {}
func (s *ClassDeclaration) stmtNode()     {}
func (s *ClassDeclaration) Pos() Position { return s.position }

func (s *ClassDeclaration) Field(name string) (*Field, bool) {
	for _, field := range s.Fields {
		if field.Name.Name == name {
			return field, true
		}
	}
	return nil, false
}

func (s *ClassDeclaration) Method(selector string) (*MethodDef, bool) {
	for _, method := range s.Methods {
		if method.Selector() == selector {
			return method, true
		}
	}
	return nil, false
}

type Field struct {
	Name     *Identifier
	Default  Expression
	position Position
}

func (f *Field) node()         {}
func (f *Field) Pos() Position { return f.position }

type MethodKind int

const (
	UnaryMethodKind MethodKind = iota
	BinaryMethodKind
	KeywordMethodKind
)

func (k MethodKind) String() string {
	switch k {
	case UnaryMethodKind:
		return "unary"
	case BinaryMethodKind:
		return "binary"
	case KeywordMethodKind:
		return "keyword"
	default:
		return fmt.Sprintf("MethodKind(%d)", int(k))
	}
}

// MethodBody is one of UnaryMethod, BinaryMethod or KeywordMethod.
type MethodBody interface {
	Node
	Kind() MethodKind
	methodBody()
}

type UnaryMethod struct {
	Selector *Message
	Body     []Statement
	position Position
}

func (m *UnaryMethod) node()            {}
func (m *UnaryMethod) methodBody()      {}
func (m *UnaryMethod) Pos() Position    { return m.position }
func (m *UnaryMethod) Kind() MethodKind { return UnaryMethodKind }

type BinaryMethod struct {
	Selector *Message
	Param    *Identifier
	Body     []Statement
	position Position
}

func (m *BinaryMethod) node()            {}
func (m *BinaryMethod) methodBody()      {}
func (m *BinaryMethod) Pos() Position    { return m.position }
func (m *BinaryMethod) Kind() MethodKind { return BinaryMethodKind }

// KeywordMethod pairs Keywords[i] with Params[i].
type KeywordMethod struct {
	Keywords []*KeywordMessage
	Params   []*Identifier
	Body     []Statement
	position Position
}

func (m *KeywordMethod) node()            {}
func (m *KeywordMethod) methodBody()      {}
func (m *KeywordMethod) Pos() Position    { return m.position }
func (m *KeywordMethod) Kind() MethodKind { return KeywordMethodKind }

// MethodDef tags a method body with its kind so consumers can branch without
// a type switch. Build one with NewMethodDef.
type MethodDef struct {
	Kind   MethodKind
	Method MethodBody
}

func (m *MethodDef) node()         {}
func (m *MethodDef) Pos() Position { return m.Method.Pos() }

// NewMethodDef wraps body, rejecting a declared kind that disagrees with the
// body's own.
func NewMethodDef(kind MethodKind, body MethodBody) (*MethodDef, error) {
	if body == nil {
		return nil, fmt.Errorf("%s method has no body", kind)
	}
	if body.Kind() != kind {
		return nil, fmt.Errorf("method declared %s but defined as %s", kind, body.Kind())
	}
	return &MethodDef{Kind: kind, Method: body}, nil
}

// Selector returns the message the method answers, e.g. "norm", "+" or
// "at:put:".
func (m *MethodDef) Selector() string {
	switch body := m.Method.(type) {
	case *UnaryMethod:
		return body.Selector.Selector
	case *BinaryMethod:
		return body.Selector.Selector
	case *KeywordMethod:
		var b strings.Builder
		for _, kw := range body.Keywords {
			b.WriteString(kw.Keyword)
			b.WriteByte(':')
		}
		return b.String()
	default:
		return ""
	}
}

// Body returns the statements of the wrapped method.
func (m *MethodDef) Body() []Statement {
	switch body := m.Method.(type) {
	case *UnaryMethod:
		return body.Body
	case *BinaryMethod:
		return body.Body
	case *KeywordMethod:
		return body.Body
	default:
		return nil
	}
}
