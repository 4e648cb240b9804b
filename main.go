package main

import "github.com/Rorical/RoriSelect/cmd"

func main() {
	cmd.Execute()
}
