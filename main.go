package main

import "github.com/alexiusacademia/gorcw/cmd"

func main() {
	cmd.Execute()
}
