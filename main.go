package main

import "github.com/aThornes/instagram-stats/cmd"

func main() {
	cmd.Execute()
}
