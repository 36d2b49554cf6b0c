package main

import "github.com/josephlewis42/ptbrun/cmd"

func main() {
	cmd.Execute()
}
