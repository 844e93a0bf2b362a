package main

import "github.com/user/riskdash/cmd"

func main() {
	cmd.Execute()
}
