package main

import "connect4/cmd"

func main() {
	cmd.Execute()
}
