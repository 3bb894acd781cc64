package main

import "github.com/theirongolddev/expenses/cmd"

func main() {
	cmd.Execute()
}
