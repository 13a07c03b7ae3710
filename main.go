package main

import "github.com/wversluys/fetcharr/cmd"

func main() {
	cmd.Execute()
}
