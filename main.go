package main

import "ygo/smallworld/cmd"

func main() {
	cmd.Execute()
}
