package main

import "github.com/sarchlab/cachecost/cachecost/cmd"

func main() {
	cmd.Execute()
}
