package main

import "github.com/sakshigoud44/back2campus/cmd"

func main() {
	cmd.Execute()
}
