package main

import "github.com/quocvuong92/archie/cmd"

func main() {
	cmd.Execute()
}
