package main

import (
	"os"

	"orbitfx/internal/cli"
	_ "orbitfx/internal/sims/figures"
	_ "orbitfx/internal/sims/orbit"
	_ "orbitfx/internal/sims/rings"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
