package main

import "github.com/alexiusacademia/gomix/cmd"

func main() {
	cmd.Execute()
}
