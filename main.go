package main

import "github.com/jsphweid/melodygen/cmd"

func main() {
	cmd.Execute()
}
