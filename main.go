package main

import "natbtree/cmd"

func main() {
	cmd.Execute()
}
