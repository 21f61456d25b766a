package main

import "github.com/d0b3-xyz/autocsv/cmd"

func main() {
	cmd.Execute()
}
