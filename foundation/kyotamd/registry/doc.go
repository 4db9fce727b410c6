// File: doc.go
// Title: kyotamd Command Registry Package Documentation
// Description: Host command table for the kyotamd interpreter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial registry implementation

/*
Package registry holds the commands a host application adds to the
kyotamd interpreter, and optional aliases for any command name.

The registry is generic over the action type so that it does not depend on
the interpreter; the interpreter instantiates it as
registry.Registry[interpreter.Action]. Names are validated against the
command name grammar at registration. All methods are safe for concurrent
use.
*/
package registry
