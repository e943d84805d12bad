package main

import "blklauncher/cmd/blk/root"

func main() {
	root.Execute()
}
