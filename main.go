package main

import "github.com/gitfolio/gitfolio/cmd"

func main() {
	cmd.Execute()
}
