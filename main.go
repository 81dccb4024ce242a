package main

import "snippets/cmd"

func main() {
	cmd.Execute()
}
