package main

import "github.com/KaramelBytes/dataexplorer-cli/cmd"

func main() {
	cmd.Execute()
}
