package main

import (
	"github.com/arquati/catimport/internal/cmd"
)

func main() {
	cmd.Execute()
}
