package main

import "github.com/CodeStranger-Fred/gridagents/cmd"

func main() {
	cmd.Execute()
}
