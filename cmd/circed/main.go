package main

import "circed/cmd/circed/cmd"

func main() {
	cmd.Execute()
}
