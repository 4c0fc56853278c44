// Command gen emits ecs/signature_generated.go: one SigN helper per fixed
// component arity, in the checked-in-generated-file style
// edwinsyarief-lazyecs uses for its own *_generated.go files. Invoked via
// `go:generate` from ecs/signature.go; not part of the library's runtime
// surface.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"

	"golang.org/x/tools/imports"
)

const minArity, maxArity = 2, 8

var letters = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

func main() {
	out := flag.String("out", "ecs/signature_generated.go", "output file path")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by internal/gen; DO NOT EDIT.\n\n")
	buf.WriteString("package ecs\n\n")
	buf.WriteString("// Sig2 through Sig8 build a Signature from a fixed number of component ids\n")
	buf.WriteString("// without the caller spelling out a variadic call, the way\n")
	buf.WriteString("// edwinsyarief-lazyecs checks in one function per arity in its own\n")
	buf.WriteString("// *_generated.go files. Nothing about core semantics depends on these --\n")
	buf.WriteString("// each is a thin literal wrapper around NewSignature, covered by\n")
	buf.WriteString("// signature_generated_test.go's cross-check against the general\n")
	buf.WriteString("// constructor.\n\n")

	for n := minArity; n <= maxArity; n++ {
		params := letters[:n]
		fmt.Fprintf(&buf, "func Sig%d(", n)
		for i, p := range params {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(p)
		}
		buf.WriteString(" Entity) Signature {\n")
		fmt.Fprintf(&buf, "\treturn NewSignature(%s)\n", joinArgs(params))
		buf.WriteString("}\n\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}
	imported, err := imports.Process(*out, formatted, nil)
	if err != nil {
		log.Fatalf("goimports generated source: %v", err)
	}

	if err := os.WriteFile(*out, imported, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}

func joinArgs(params []string) string {
	var buf bytes.Buffer
	for i, p := range params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p)
	}
	return buf.String()
}
