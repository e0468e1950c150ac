package main

import "github.com/dbsmedya/dinofacts/cmd/dinofacts/cmd"

func main() {
	cmd.Execute()
}
