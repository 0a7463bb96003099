package main

import "github.com/devshelf/devshelf/cmd"

func main() {
	cmd.Execute()
}
