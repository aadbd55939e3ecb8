package main

import "github.com/movekit/movevm/cmd/typetool/cmd"

func main() {
	cmd.Execute()
}
