package main

import "github.com/calebcase/dpd/cmd/dpd/cmd"

func main() {
	cmd.Execute()
}
