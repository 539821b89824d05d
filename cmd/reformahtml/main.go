// Command reformahtml reflows HTML and Bikeshed sources in place, joining
// soft-wrapped lines of prose while leaving block structure, verbatim regions
// and indentation alone.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("reformahtml: ")
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatalln(err)
	}
}
