package main

import "fitfive/cmd/ff/root"

func main() {
	root.Execute()
}
