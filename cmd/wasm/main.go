//go:build js && wasm

package main

import (
	"github.com/inkmarrow/bloggc/wasm"
)

func main() {
	wasm.Register()
	select {} // keep the wasm instance alive for JS callbacks
}
