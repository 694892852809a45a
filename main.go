package main

import "collection-tracker/cmd"

func main() {
	cmd.Execute()
}
