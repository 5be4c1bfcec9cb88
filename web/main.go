package main

import (
	"flag"
	"log"

	"github.com/ChefYeum/go-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to run the web server on")
	workers := flag.Int("workers", 0, "Number of render workers (0 = number of CPUs)")
	flag.Parse()

	srv := server.NewServer(*port, *workers)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
