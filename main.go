package main

import "github.com/mpapenbr/trackdelta/cmd"

func main() {
	cmd.Execute()
}
