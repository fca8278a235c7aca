package main

import "github.com/kazuma-desu/drop/cmd"

func main() {
	cmd.Execute()
}
