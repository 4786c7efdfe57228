package main

import "classiflyer/cmd/classiflyer-cli/cmd"

func main() {
	cmd.Execute()
}
