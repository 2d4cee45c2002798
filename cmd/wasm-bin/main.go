package main

import "github.com/Healthire/wasm-bin/internal/cli"

func main() {
	cli.Execute()
}
