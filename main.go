package main

import "github.com/jsphweid/ragakey/cmd"

func main() {
	cmd.Execute()
}
