package main

import "tcg-catalog/cmd"

func main() {
	cmd.Execute()
}
