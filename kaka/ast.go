package kaka

import "strings"

// Node is implemented by every AST node. The set of nodes is closed: only
// this package can add implementations.
type Node interface {
	Pos() Position
	node()
}

// Statement is anything that can appear in a program, block or method body.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a statement that produces a value.
type Expression interface {
	Statement
	exprNode()
}

type UnarySend struct {
	Receiver Expression
	Message  *Message
	position Position
}

func (e *UnarySend) node()         {}
func (e *UnarySend) stmtNode()     {}
func (e *UnarySend) exprNode()     {}
func (e *UnarySend) Pos() Position { return e.position }

type BinarySend struct {
	Receiver Expression
	Message  *Message
	Argument Expression
	position Position
}

func (e *BinarySend) node()         {}
func (e *BinarySend) stmtNode()     {}
func (e *BinarySend) exprNode()     {}
func (e *BinarySend) Pos() Position { return e.position }

// KeywordSend collects every keyword/argument pair of one send. Pairs is
// never empty.
type KeywordSend struct {
	Receiver Expression
	Pairs    []KeywordPair
	position Position
}

type KeywordPair struct {
	Keyword  *KeywordMessage
	Argument Expression
}

func (e *KeywordSend) node()         {}
func (e *KeywordSend) stmtNode()     {}
func (e *KeywordSend) exprNode()     {}
func (e *KeywordSend) Pos() Position { return e.position }

// Selector joins the keywords of the send, e.g. "at:put:".
func (e *KeywordSend) Selector() string {
	var b strings.Builder
	for _, pair := range e.Pairs {
		b.WriteString(pair.Keyword.Keyword)
		b.WriteByte(':')
	}
	return b.String()
}

// Message is the selector of a unary or binary send, carried apart from its
// receiver so selectors compare equal across send shapes.
type Message struct {
	Selector string
	position Position
}

func (m *Message) node()         {}
func (m *Message) Pos() Position { return m.position }

// KeywordMessage is one keyword of a keyword send, without its colon.
type KeywordMessage struct {
	Keyword  string
	position Position
}

func (m *KeywordMessage) node()         {}
func (m *KeywordMessage) Pos() Position { return m.position }

type Identifier struct {
	Name     string
	position Position
}

func (e *Identifier) node()         {}
func (e *Identifier) stmtNode()     {}
func (e *Identifier) exprNode()     {}
func (e *Identifier) Pos() Position { return e.position }

type IntegerLiteral struct {
	Value    int64
	position Position
}

func (e *IntegerLiteral) node()         {}
func (e *IntegerLiteral) stmtNode()     {}
func (e *IntegerLiteral) exprNode()     {}
func (e *IntegerLiteral) Pos() Position { return e.position }

type FloatLiteral struct {
	Value    float64
	position Position
}

func (e *FloatLiteral) node()         {}
func (e *FloatLiteral) stmtNode()     {}
func (e *FloatLiteral) exprNode()     {}
func (e *FloatLiteral) Pos() Position { return e.position }

// StringLiteral holds the text between the quotes exactly as written.
type StringLiteral struct {
	Value    string
	position Position
}

func (e *StringLiteral) node()         {}
func (e *StringLiteral) stmtNode()     {}
func (e *StringLiteral) exprNode()     {}
func (e *StringLiteral) Pos() Position { return e.position }

type ListLiteral struct {
	Elements []Expression
	position Position
}

func (e *ListLiteral) node()         {}
func (e *ListLiteral) stmtNode()     {}
func (e *ListLiteral) exprNode()     {}
func (e *ListLiteral) Pos() Position { return e.position }

// MapLiteral keeps its entries in source order. Key uniqueness is left to
// later stages.
type MapLiteral struct {
	Entries  []MapEntry
	position Position
}

type MapEntry struct {
	Key   Expression
	Value Expression
}

func (e *MapLiteral) node()         {}
func (e *MapLiteral) stmtNode()     {}
func (e *MapLiteral) exprNode()     {}
func (e *MapLiteral) Pos() Position { return e.position }

type BlockLiteral struct {
	Params   []*Identifier
	Body     []Statement
	position Position
}

func (e *BlockLiteral) node()         {}
func (e *BlockLiteral) stmtNode()     {}
func (e *BlockLiteral) exprNode()     {}
func (e *BlockLiteral) Pos() Position { return e.position }
