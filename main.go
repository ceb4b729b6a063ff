package main

import "generate-image/cmd"

func main() {
	cmd.Execute()
}
