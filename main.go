package main

import "github.com/yogiiiiiiiiii/TN-project-final/cmd"

func main() {
	cmd.Execute()
}
