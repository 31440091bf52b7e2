package main

import (
	"github.com/consensys/go-lfsr/pkg/cmd"
)

func main() {
	cmd.Execute()
}
