package main

import "hunterline/cmd/hl/root"

func main() {
	root.Execute()
}
