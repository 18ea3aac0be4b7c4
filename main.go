package main

import "github.com/Manu343726/isatable/cmd"

func main() {
	cmd.Execute()
}
