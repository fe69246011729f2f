package main

import "github.com/kekoav/kala/cmd"

func main() {
	cmd.Execute()
}
