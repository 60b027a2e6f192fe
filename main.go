package main

import (
	"fmt"
	"os"

	"portscope/api"
	"portscope/cli"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if err := api.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "portscope: %v\n", err)
			os.Exit(1)
		}
		return
	}
	cli.Run()
}
