// Regenerates the calendar tables of the cftime package.
package main

import (
	"flag"
	"log"

	"github.com/geoclim/cftime-go/internal/generate"
)

func main() {
	out := flag.String("out", "cftime/tables_gen.go", "output file")
	flag.Parse()

	log.Println("generating calendar tables...")
	if err := generate.Tables().Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", *out)
}
