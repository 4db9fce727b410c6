// File: registry_test.go
// Title: kyotamd Registry Tests
// Description: Tests for command registration, name validation, lookup,
//              aliases and concurrent access.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package registry

import (
	"fmt"
	"sync"
	"testing"

	mdwerror "github.com/msto63/kyotamd/foundation/core/error"
	mdwlog "github.com/msto63/kyotamd/foundation/core/log"
)

type testAction func(args ...string) string

func newTestRegistry() *Registry[testAction] {
	return New[testAction](Options{Logger: mdwlog.Discard()})
}

func echo(args ...string) string {
	return fmt.Sprint(len(args))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Read-Line", false},
		{"Concat", false},
		{"Step-2", false},
		{"", true},
		{"read-line", true},
		{"ReadLine", true},
		{"Read-line", true},
		{" Concat", true},
		{"Concat x", true},
	}

	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q): expected error=%v, got %v", tt.name, tt.wantErr, err)
		}
		if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
			t.Errorf("ValidateName(%q): expected INVALID_INPUT, got %v", tt.name, mdwerror.GetCode(err))
		}
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := newTestRegistry()

	err := r.Register(Definition[testAction]{
		Name:        "Concat",
		Description: "Joins its arguments",
		Usage:       "values...",
		Action:      echo,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	action, ok := r.Lookup("Concat")
	if !ok {
		t.Fatal("Expected Concat to be found")
	}
	if got := action("a", "b"); got != "2" {
		t.Errorf("Expected action to run, got %q", got)
	}

	if _, ok := r.Lookup("Missing"); ok {
		t.Error("Expected Missing not to be found")
	}

	def, err := r.Get("Concat")
	if err != nil || def.Description != "Joins its arguments" || def.Usage != "values..." {
		t.Errorf("Expected stored definition, got %+v (%v)", def, err)
	}
	if _, err := r.Get("Missing"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestRegisterDuplicatesAndReplace(t *testing.T) {
	r := newTestRegistry()

	if err := r.RegisterFunc("Env", echo); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := r.RegisterFunc("Env", echo); !mdwerror.HasCode(err, mdwerror.CodeDuplicateEntry) {
		t.Errorf("Expected DUPLICATE_ENTRY, got %v", err)
	}

	replacement := func(args ...string) string { return "replaced" }
	if err := r.Replace(Definition[testAction]{Name: "Env", Action: replacement}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	action, _ := r.Lookup("Env")
	if got := action(); got != "replaced" {
		t.Errorf("Expected replaced action, got %q", got)
	}

	if err := r.RegisterFunc("bad name", echo); err == nil {
		t.Error("Expected invalid name to be rejected")
	}
}

func TestNamesDefinitionsAndUnregister(t *testing.T) {
	r := newTestRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid-Point"} {
		if err := r.RegisterFunc(name, echo); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	names := r.Names()
	want := []string{"Alpha", "Mid-Point", "Zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected sorted names %v, got %v", want, names)
			break
		}
	}

	defs := r.Definitions()
	if len(defs) != 3 || defs[0].Name != "Alpha" {
		t.Errorf("Expected sorted definitions, got %v", defs)
	}

	if !r.Unregister("Zeta") || r.Unregister("Zeta") {
		t.Error("Expected Unregister to report existence once")
	}
	if r.Len() != 2 || r.Has("Zeta") {
		t.Errorf("Expected Zeta to be gone, got %v", r.Names())
	}
}

func TestAliases(t *testing.T) {
	r := newTestRegistry()
	if err := r.RegisterFunc("Concat", echo); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := r.RegisterAlias("Join", "Concat"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := r.RegisterAlias("Say", "Print"); err != nil {
		t.Fatalf("Expected alias to an unregistered target to be allowed, got %v", err)
	}

	if _, ok := r.Lookup("Join"); !ok {
		t.Error("Expected Lookup to follow the alias")
	}
	if r.Has("Join") {
		t.Error("Expected Has to ignore aliases")
	}
	if got := r.Resolve("Say"); got != "Print" {
		t.Errorf("Expected Say to resolve to Print, got %q", got)
	}
	if got := r.Resolve("Concat"); got != "Concat" {
		t.Errorf("Expected non-alias to resolve to itself, got %q", got)
	}

	tests := []struct {
		alias, target string
		code          mdwerror.Code
	}{
		{"Concat", "Print", mdwerror.CodeDuplicateEntry},
		{"Loop", "Loop", mdwerror.CodeInvalidInput},
		{"Chain", "Join", mdwerror.CodeInvalidInput},
		{"lower", "Print", mdwerror.CodeInvalidInput},
	}
	for _, tt := range tests {
		if err := r.RegisterAlias(tt.alias, tt.target); !mdwerror.HasCode(err, tt.code) {
			t.Errorf("RegisterAlias(%s, %s): expected %s, got %v", tt.alias, tt.target, tt.code, err)
		}
	}

	if err := r.RegisterFunc("Join", echo); !mdwerror.HasCode(err, mdwerror.CodeDuplicateEntry) {
		t.Errorf("Expected registering over an alias to fail, got %v", err)
	}

	aliases := r.Aliases()
	aliases["Join"] = "Changed"
	if r.Resolve("Join") != "Concat" {
		t.Error("Expected Aliases to return a copy")
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("Cmd-%d", i)
			if err := r.RegisterFunc(name, echo); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			r.Lookup(name)
			r.Names()
		}(i)
	}
	wg.Wait()

	if r.Len() != 20 {
		t.Errorf("Expected 20 commands, got %d", r.Len())
	}
}
