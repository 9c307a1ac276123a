package main

import "lanscan/cmd"

func main() {
	cmd.Execute()
}
