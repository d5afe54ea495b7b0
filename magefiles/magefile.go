//go:build mage

// Package main contains Mage build targets for apollo-lifter developer tooling.
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
	binName = "apollo-lifter"
	cmdPkg  = "./cmd/apollo-lifter"
	outDir  = "output"
)

// inputDirs lists where the CLI looks for Spacelog data by default.
var inputDirs = []string{
	"bridged",
	"Spacelog/missions/shared/glossary",
	outDir,
}

func binPath() string {
	return filepath.Join(binDir, binName)
}

// Init creates the directories the default transcript and glossary paths expect.
func Init() error {
	for _, dir := range inputDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized. Copy a13-problem into bridged/.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	if err := sh.RunV("go", "build", "-o", binPath(), cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath())
	return nil
}

// Lift writes the default transcript as Turtle to output/a13.ttl.
func Lift() error {
	mg.Deps(Build, Init)
	out := filepath.Join(outDir, "a13.ttl")
	if err := sh.RunV(binPath(), "lift", "--output", out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

// Store indexes the default transcript in the SQLite database.
func Store() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "store")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes the binary and generated output.
func Clean() error {
	for _, p := range []string{binDir, outDir, "apollo13.db"} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}
