package main

import "github.com/kylegrant/costar/cmd"

func main() {
	cmd.Execute()
}
