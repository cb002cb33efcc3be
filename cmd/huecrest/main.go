// Huecrest - a procedural named-colour palette generator
//
// Huecrest expands twelve core hues into a 256-entry named palette and
// emits it as source-code colour tables.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/huecrest/internal/cli"
)

func main() {
	cli.Execute()
}
