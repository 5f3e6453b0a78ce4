package main

import (
	"linkr/cmd/server"
)

func main() {
	s := server.NewServer()
	s.Run()
}
