package main

import "github.com/gitlet-vcs/gitlet/cmd"

func main() {
	cmd.Execute()
}
