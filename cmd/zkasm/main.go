package main

import "github.com/keurnel/zkasm/cmd/zkasm/cmd"

func main() {
	cmd.Execute()
}
