package main

import (
	"os"

	"github.com/nivin77789/studio-glow-vue-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
