// Package compiler lowers an AST chunk into compiled Functions: it resolves
// every identifier to a local slot, an upvalue, or a global, and emits the
// matching bytecode for a stack-based virtual machine.
package compiler

import (
	"fmt"

	"github.com/corvidlang/corvid/lang/ast"
	"github.com/corvidlang/corvid/lang/token"
)

// Sink receives compiler diagnostics. The machine package's Sink embeds
// this interface, so one value can serve both the compiler and the VM;
// runtime errors are returned by the VM as errors, not reported here.
type Sink interface {
	ReportCompileError(pos token.Position, msg string)
}

const maxPoolSize = 256 // constants, locals and upvalues are each 1-byte indexed

// kind identifies how an identifier was resolved.
type kind int

const (
	kindGlobal kind = iota
	kindLocal
	kindUpvalue
)

// local records one slot in a funcState's flat locals list. Slot 0 of every
// function is the reserved "<cont>" sentinel and is never resolved by name.
type local struct {
	name     string
	captured bool
}

// funcState is the compiler's per-function (or per-chunk, at the top
// level) compilation scope.
type funcState struct {
	parent   *funcState
	fn       *Function
	locals   []local
	upvalues []UpvalueDesc
}

func newFuncState(parent *funcState, name string, params []*ast.IdentExpr) *funcState {
	fs := &funcState{
		parent: parent,
		fn:     &Function{Name: name, Chunk: &Chunk{}},
	}
	fs.locals = append(fs.locals, local{name: "<cont>"})
	for _, p := range params {
		fs.locals = append(fs.locals, local{name: p.Name})
	}
	return fs
}

// resolveLocal scans fs's own locals, most recently pushed first.
func (fs *funcState) resolveLocal(name string) (int, bool) {
	for i := len(fs.locals) - 1; i >= 0; i-- {
		if fs.locals[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// addUpvalue records an upvalue descriptor in fs, deduplicating against any
// existing entry, and returns its index. Like addConstant and addLocal, it
// reports a compile error instead of overflowing the 1-byte index used by
// GET_UPVALUE/SET_UPVALUE and the CLOSURE operand.
func (c *compiler) addUpvalue(fs *funcState, pos token.Pos, desc UpvalueDesc) int {
	for i, u := range fs.upvalues {
		if u == desc {
			return i
		}
	}
	if len(fs.upvalues) >= maxPoolSize {
		c.errorf(pos, "too many upvalues in one function (max %d)", maxPoolSize)
		return 0
	}
	fs.upvalues = append(fs.upvalues, desc)
	return len(fs.upvalues) - 1
}

// resolveUpvalue recursively resolves name as an upvalue against fs's
// ancestor scopes, marking captured locals along the way.
func (c *compiler) resolveUpvalue(fs *funcState, pos token.Pos, name string) (int, bool) {
	if fs.parent == nil {
		return 0, false
	}
	if idx, ok := fs.parent.resolveLocal(name); ok {
		fs.parent.locals[idx].captured = true
		return c.addUpvalue(fs, pos, UpvalueDesc{InLocal: true, Index: byte(idx)}), true
	}
	if idx, ok := c.resolveUpvalue(fs.parent, pos, name); ok {
		return c.addUpvalue(fs, pos, UpvalueDesc{InLocal: false, Index: byte(idx)}), true
	}
	return 0, false
}

// resolve classifies name as a local, upvalue or global reference.
func (c *compiler) resolve(fs *funcState, pos token.Pos, name string) (kind, int) {
	if idx, ok := fs.resolveLocal(name); ok {
		return kindLocal, idx
	}
	if idx, ok := c.resolveUpvalue(fs, pos, name); ok {
		return kindUpvalue, idx
	}
	return kindGlobal, 0
}

// compiler holds the state shared across an entire Compile call.
type compiler struct {
	sink     Sink
	file     *token.File
	cur      *funcState
	hadError bool
}

// Compile lowers chunk (parsed from file) into a top-level Function. The
// returned bool is false if any compile error was reported to sink, in
// which case the returned Function must not be run.
func Compile(sink Sink, file *token.File, chunk *ast.Chunk) (*Function, bool) {
	c := &compiler{sink: sink, file: file}
	c.cur = newFuncState(nil, chunk.Name, nil)

	for _, s := range chunk.Stmts {
		c.compileStmt(s)
	}
	c.cur.fn.UpvalueArity = len(c.cur.upvalues)
	return c.cur.fn, !c.hadError
}

func (c *compiler) errorf(pos token.Pos, format string, args ...any) {
	c.hadError = true
	c.sink.ReportCompileError(c.file.Position(pos), fmt.Sprintf(format, args...))
}

func (c *compiler) line(pos token.Pos) int {
	return c.file.Position(pos).Line
}

// emit appends op and its operand bytes to the current function's chunk,
// all attributed to the source line containing pos.
func (c *compiler) emit(pos token.Pos, op Opcode, operands ...byte) {
	ch := c.cur.fn.Chunk
	line := c.line(pos)
	ch.Code = append(ch.Code, byte(op))
	ch.Lines = append(ch.Lines, line)
	for _, b := range operands {
		ch.Code = append(ch.Code, b)
		ch.Lines = append(ch.Lines, line)
	}
}

// addConstant interns v in the current chunk's constant pool and returns
// its 1-byte index, reporting a compile error if the pool overflows.
func (c *compiler) addConstant(pos token.Pos, v any) byte {
	ch := c.cur.fn.Chunk
	for i, k := range ch.Constants {
		if k == v {
			return byte(i)
		}
	}
	if len(ch.Constants) >= maxPoolSize {
		c.errorf(pos, "too many constants in one chunk (max %d)", maxPoolSize)
		return 0
	}
	ch.Constants = append(ch.Constants, v)
	return byte(len(ch.Constants) - 1)
}

// addLocal pushes a new local slot in the current function, reporting a
// compile error if the function overflows its local slot budget.
func (c *compiler) addLocal(pos token.Pos, name string) byte {
	if len(c.cur.locals) >= maxPoolSize {
		c.errorf(pos, "too many locals in one function (max %d)", maxPoolSize)
		return 0
	}
	c.cur.locals = append(c.cur.locals, local{name: name})
	return byte(len(c.cur.locals) - 1)
}

func (c *compiler) compileStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.PrintStmt:
		c.compileExpr(s.X)
		c.emit(s.Print, PRINT)
	case *ast.AssignStmt:
		c.compileExpr(s.Right)
		c.emitSet(s.Assign, s.Left.Name)
	case *ast.ExprStmt:
		c.compileExpr(s.X)
		c.emit(s.Semi, POP)
	case *ast.VarDecl:
		c.compileVarDecl(s)
	case *ast.FunDecl:
		c.compileFunDecl(s)
	case *ast.ReturnStmt:
		c.compileReturnStmt(s)
	default:
		panic(fmt.Sprintf("compiler: unhandled statement %T", s))
	}
}

func (c *compiler) compileReturnStmt(s *ast.ReturnStmt) {
	if c.cur.parent == nil {
		c.errorf(s.Return, "return outside function")
		return
	}
	if s.X != nil {
		c.compileExpr(s.X)
	} else {
		c.emit(s.Return, NIL)
	}
	c.emit(s.Return, RETURN)
}

func (c *compiler) compileVarDecl(s *ast.VarDecl) {
	if c.cur.parent == nil {
		// Top level: the binding is a global.
		if s.Value != nil {
			c.compileExpr(s.Value)
		} else {
			c.emit(s.Var, NIL)
		}
		k := c.addConstant(s.Name.NamePos, s.Name.Name)
		c.emit(s.Var, SET_GLOBAL, k)
		return
	}

	// Function scope: the declaration reserves a new local slot.
	c.emit(s.Var, NIL)
	idx := c.addLocal(s.Name.NamePos, s.Name.Name)
	if s.Value != nil {
		c.compileExpr(s.Value)
		c.emit(s.Var, SET_LOCAL, idx)
	}
}

func (c *compiler) compileFunDecl(s *ast.FunDecl) {
	// A function declared inside another function is a local of the
	// enclosing function, exactly like `var`, and for the same reason:
	// reserving its slot before compiling the body lets the body resolve
	// a call to its own name as a captured upvalue, giving recursion to
	// nested functions the same way top-level recursion falls out of
	// global lookup resolving at call time rather than compile time.
	if c.cur.parent != nil {
		c.emit(s.Fun, NIL)
		c.addLocal(s.Name.NamePos, s.Name.Name)
	}

	fs := newFuncState(c.cur, s.Name.Name, s.Params)
	if len(s.Params) > 0xff {
		c.errorf(s.Fun, "too many parameters (max %d)", 0xff)
	}

	c.cur = fs
	tailReturn := false
	for _, body := range s.Body {
		c.compileStmt(body)
		_, tailReturn = body.(*ast.ReturnStmt)
	}
	if !tailReturn {
		// Every path that falls off the end of the body (including an
		// empty one) implicitly returns nil; a body whose last statement
		// is already a `return` has no fall-through path to cover.
		c.emit(s.Rbrace, NIL)
		c.emit(s.Rbrace, RETURN)
	}
	fs.fn.UpvalueArity = len(fs.upvalues)
	c.cur = fs.parent

	k := c.addConstant(s.Fun, fs.fn)
	c.emit(s.Fun, CONSTANT, k)

	operands := make([]byte, 0, 1+2*len(fs.upvalues))
	operands = append(operands, byte(len(fs.upvalues)))
	for _, u := range fs.upvalues {
		b := byte(0)
		if u.InLocal {
			b = 1
		}
		operands = append(operands, b, u.Index)
	}
	c.emit(s.Fun, CLOSURE, operands...)

	c.emitSet(s.Fun, s.Name.Name)
}

func (c *compiler) compileExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.NumberExpr:
		k := c.addConstant(e.ValuePos, e.Value)
		c.emit(e.ValuePos, CONSTANT, k)
	case *ast.StringExpr:
		k := c.addConstant(e.ValuePos, e.Value)
		c.emit(e.ValuePos, CONSTANT, k)
	case *ast.IdentExpr:
		c.emitGet(e.NamePos, e.Name)
	case *ast.BinaryExpr:
		c.compileExpr(e.Left)
		c.compileExpr(e.Right)
		c.emit(e.OpPos, binaryOpcode(e.Op))
	case *ast.CallExpr:
		c.compileExpr(e.Fun)
		for _, a := range e.Args {
			c.compileExpr(a)
		}
		if len(e.Args) > 0xff {
			pos, _ := e.Fun.Span()
			c.errorf(pos, "too many arguments (max %d)", 0xff)
		}
		pos, _ := e.Fun.Span()
		c.emit(pos, CALL, byte(len(e.Args)))
	default:
		panic(fmt.Sprintf("compiler: unhandled expression %T", e))
	}
}

func binaryOpcode(tok token.Token) Opcode {
	switch tok {
	case token.PLUS:
		return ADD
	case token.MINUS:
		return SUB
	case token.STAR:
		return MUL
	case token.SLASH:
		return DIV
	default:
		panic(fmt.Sprintf("compiler: unhandled binary operator %v", tok))
	}
}

// emitGet resolves name and emits the matching read opcode.
func (c *compiler) emitGet(pos token.Pos, name string) {
	switch k, idx := c.resolve(c.cur, pos, name); k {
	case kindLocal:
		c.emit(pos, GET_LOCAL, byte(idx))
	case kindUpvalue:
		c.emit(pos, GET_UPVALUE, byte(idx))
	default:
		kk := c.addConstant(pos, name)
		c.emit(pos, GET_GLOBAL, kk)
	}
}

// emitSet resolves name and emits the matching write opcode.
func (c *compiler) emitSet(pos token.Pos, name string) {
	switch k, idx := c.resolve(c.cur, pos, name); k {
	case kindLocal:
		c.emit(pos, SET_LOCAL, byte(idx))
	case kindUpvalue:
		c.emit(pos, SET_UPVALUE, byte(idx))
	default:
		kk := c.addConstant(pos, name)
		c.emit(pos, SET_GLOBAL, kk)
	}
}
