/*
File    : go-slate/cmd/slate/main.go
Project : go-slate
*/
package main

import (
	"os"

	"github.com/alpharomercoma/go-slate/cmd/slate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
