package main

import "github.com/srtlab/srted/internal/cli"

func main() {
	cli.Execute()
}
