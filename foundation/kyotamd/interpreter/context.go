// File: context.go
// Title: kyotamd Execution Contexts
// Description: The two execution contexts a command can run in. A
//              top-level command gets an IndexedContext that exposes the
//              instruction pointer; a nested command gets an
//              ArgumentContext that only knows its parent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package interpreter

// Context is the execution context passed to every action. The set of
// implementations is closed: *IndexedContext and *ArgumentContext.
type Context interface {
	// Interpreter returns the interpreter running the command
	Interpreter() *Interpreter

	context()
}

// IndexedContext is the context of a top-level command
type IndexedContext struct {
	interp   *Interpreter
	index    int
	setIndex func(int)
}

// ArgumentContext is the context of a command nested in another command's
// argument list
type ArgumentContext struct {
	interp *Interpreter
	parent Context
}

func (*IndexedContext) context()  {}
func (*ArgumentContext) context() {}

// Interpreter returns the interpreter running the command
func (c *IndexedContext) Interpreter() *Interpreter {
	return c.interp
}

// Index returns the instruction pointer of the running command
func (c *IndexedContext) Index() int {
	return c.index
}

// SetIndex makes execution continue at index once the command returns.
// Indexes past the last command end the program; negative ones fail it.
func (c *IndexedContext) SetIndex(index int) {
	c.setIndex(index)
}

// Interpreter returns the interpreter running the command
func (c *ArgumentContext) Interpreter() *Interpreter {
	return c.interp
}

// Parent returns the context of the enclosing command
func (c *ArgumentContext) Parent() Context {
	return c.parent
}

// Root follows Parent links up to the top-level context
func Root(ctx Context) Context {
	for {
		arg, ok := ctx.(*ArgumentContext)
		if !ok || arg.parent == nil {
			return ctx
		}
		ctx = arg.parent
	}
}
