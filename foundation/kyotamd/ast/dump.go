// File: dump.go
// Title: kyotamd AST Dump Form
// Description: Converts the command tree into plain data that encodes
//              cleanly as YAML or JSON.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Node is the dump form of a command. Arguments hold either a string or a
// *Node.
type Node struct {
	Name      string        `yaml:"name" json:"name"`
	Line      int           `yaml:"line,omitempty" json:"line,omitempty"`
	Arguments []interface{} `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// Dump converts a command into its dump form
func Dump(cmd *Command) *Node {
	node := &Node{Name: cmd.Name, Line: cmd.Line}
	for _, arg := range cmd.Arguments {
		switch a := arg.(type) {
		case StringArg:
			node.Arguments = append(node.Arguments, string(a))
		case *Command:
			node.Arguments = append(node.Arguments, Dump(a))
		}
	}
	return node
}

// DumpProgram converts every command of a program
func DumpProgram(program []*Command) []*Node {
	nodes := make([]*Node, len(program))
	for i, cmd := range program {
		nodes[i] = Dump(cmd)
	}
	return nodes
}
