//go:build js && wasm

// Package wasm exposes Compile to a browser host as a global JS
// function, so the DSL can be compiled client-side without a server
// round trip. The domain logic (bloggc.Compile) stays free of any
// platform concerns; this package adapts it at the edge.
package wasm

import (
	"syscall/js"

	"github.com/inkmarrow/bloggc"
)

// Register installs the "bloggcCompile" global. It is called from an
// init-only main package built with GOOS=js GOARCH=wasm.
func Register() {
	js.Global().Set("bloggcCompile", js.FuncOf(compile))
}

// compile adapts bloggc.Compile to the JS calling convention: one
// string argument, and a {ok: string} or {err: string} result object.
func compile(_ js.Value, args []js.Value) interface{} {
	result := js.Global().Get("Object").New()
	if len(args) < 1 {
		result.Set("err", "compile: missing source argument")
		return result
	}
	html, err := bloggc.Compile(args[0].String())
	if err != nil {
		result.Set("err", err.Error())
		return result
	}
	result.Set("ok", html)
	return result
}
