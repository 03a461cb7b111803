package main

import "github.com/Manu343726/sizeof/cmd"

func main() {
	cmd.Execute()
}
