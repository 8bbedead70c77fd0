package main

import "github.com/jake-scott/comfortcloud/cmd"

func main() {
	cmd.Execute()
}
