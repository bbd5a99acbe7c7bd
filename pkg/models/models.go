// Package models ingests device model libraries from several vendor
// file dialects into [netlist.Model] values, so components can be
// seeded with foundry defaults instead of hand-typed parameter maps.
package models

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lowent/netforge/pkg/netlist"
)

// Library maps model names to their definitions.
type Library map[string]*netlist.Model

// Parser reads one model-file dialect into a library.
type Parser func(io.Reader) (Library, error)

// ParseFile reads path with the given dialect parser.
func ParseFile(path string, parse Parser) (Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()
	return parse(f)
}

// CastValue coerces a raw string to the narrowest fitting type: int,
// then float, then the string itself.
func CastValue(val string) any {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	return val
}
