package main

import "hrcore/internal/app/server"

func main() {
	server.Run()
}
