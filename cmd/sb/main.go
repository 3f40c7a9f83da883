package main

import "smallbrave/cmd/sb/root"

func main() {
	root.Execute()
}
