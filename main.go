package main

import "github.com/cmoraes/tj-feed/cmd"

func main() {
	cmd.Execute()
}
