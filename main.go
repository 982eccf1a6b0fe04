package main

import "github.com/KostasZigo/gitgraph/cmd"

func main() {
	cmd.Execute()
}
