// Package ast defines the syntax tree shape the evaluator walks. The
// lexer/parser pair that builds trees of this shape, and the resolver pass
// that annotates them, are external collaborators: this package only fixes
// the contract between them and the evaluator.
package ast

import "github.com/chalkline/loxwalk/token"

// ID is a stable identity for an expression node, assigned once at parse
// time. The resolver keys its distance map by ID rather than by pointer so
// that a tree can be copied, cached, or replayed without invalidating the
// map: see Environment.GetAt.
type ID int64

var nextID ID

// NewID hands out the next monotonically increasing expression identity.
// It is called exactly once per expression node, by the parser.
func NewID() ID {
	nextID++
	return nextID
}

type Stmt interface {
	stmtNode()
}

type Expr interface {
	exprNode()
	ID() ID
}

type exprBase struct {
	id ID
}

func (b exprBase) ID() ID { return b.id }

func newExprBase() exprBase {
	return exprBase{id: NewID()}
}

// ---- Expressions ----

type Literal struct {
	exprBase
	Value any
}

type Grouping struct {
	exprBase
	Expression Expr
}

type Variable struct {
	exprBase
	Name token.Token
}

type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Ternary struct {
	exprBase
	Cond    Expr
	OnTrue  Expr
	OnFalse Expr
}

type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

type This struct {
	exprBase
	Keyword token.Token
}

type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

type Array struct {
	exprBase
	Values []Expr
}

type ArrayGet struct {
	exprBase
	Array Expr
	Index Expr
}

type ArraySet struct {
	exprBase
	Array Expr
	Index Expr
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Ternary) exprNode()  {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
func (*Array) exprNode()    {}
func (*ArrayGet) exprNode() {}
func (*ArraySet) exprNode() {}

func NewLiteral(v any) *Literal              { return &Literal{exprBase: newExprBase(), Value: v} }
func NewGrouping(e Expr) *Grouping           { return &Grouping{exprBase: newExprBase(), Expression: e} }
func NewVariable(name token.Token) *Variable { return &Variable{exprBase: newExprBase(), Name: name} }
func NewAssign(name token.Token, v Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: v}
}
func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: op, Right: right}
}
func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func NewTernary(cond, onTrue, onFalse Expr) *Ternary {
	return &Ternary{exprBase: newExprBase(), Cond: cond, OnTrue: onTrue, OnFalse: onFalse}
}
func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Args: args}
}
func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}
func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}
func NewThis(keyword token.Token) *This { return &This{exprBase: newExprBase(), Keyword: keyword} }
func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}
func NewArray(values []Expr) *Array { return &Array{exprBase: newExprBase(), Values: values} }
func NewArrayGet(arr, index Expr) *ArrayGet {
	return &ArrayGet{exprBase: newExprBase(), Array: arr, Index: index}
}
func NewArraySet(arr, index, value Expr) *ArraySet {
	return &ArraySet{exprBase: newExprBase(), Array: arr, Index: index, Value: value}
}

// ---- Statements ----

type ExpressionStmt struct {
	Expression Expr
}

type PrintStmt struct {
	Keyword     token.Token
	Expressions []Expr
}

type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

type BlockStmt struct {
	Statements []Stmt
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

type ForStmt struct {
	Initializer Stmt
	Condition   Expr
	Increment   Expr
	Body        Stmt
}

type BreakStmt struct {
	Keyword token.Token
}

type ContinueStmt struct {
	Keyword token.Token
}

type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

type ClassStmt struct {
	Name    token.Token
	Methods []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForStmt) stmtNode()        {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*FunctionStmt) stmtNode()   {}
func (*ClassStmt) stmtNode()      {}
