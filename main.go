package main

import "github.com/tathagatalaskar/paycycle/cmd"

func main() {
	cmd.Execute()
}
