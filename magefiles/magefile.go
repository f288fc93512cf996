//go:build mage

// Package main contains Mage build targets for planet-field.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "planet-field"
)

// Default target when mage is run without arguments.
var Default = Build

// Build compiles the binary into bin/.
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Params prints the statistics of a seeded star field.
func Params() error {
	return sh.RunV("go", "run", ".", "params", "--seed", "1")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
