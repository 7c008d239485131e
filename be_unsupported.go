//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// Builds are limited to the little-endian targets listed in le_check.go;
// on any other architecture this file stops compilation.
var _ = "this core requires a little-endian architecture" + 1
