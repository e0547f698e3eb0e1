package main

import "github.com/RMO1749/distvec/cmd"

func main() {
	cmd.Execute()
}
