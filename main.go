package main

import "mgd/cmd"

func main() {
	cmd.Execute()
}
