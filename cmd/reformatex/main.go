// Command reformatex dumps the token stream that reformahtml scans from its
// standard input, as a numbered list with a hexdump of each token.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jcorbin/reformahtml/internal/cliutil"
	"github.com/jcorbin/reformahtml/internal/scanio"
	"github.com/jcorbin/reformahtml/reformat"
)

func main() {
	var (
		out     = &cliutil.ErrWriter{Writer: os.Stdout}
		verbose bool
		sep     string
	)

	flag.BoolVar(&verbose, "v", false, "enable verbose output")
	flag.StringVar(&sep, "sep", "", "just copy input to output with this separator between tokens")
	flag.Parse()

	logOut := cliutil.NewPrefixWriter("> log: ", out)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	addLogPrefix := func(prefix string) func() {
		old := logOut.Prefix
		logOut.Prefix = old + prefix
		return func() {
			logOut.Prefix = old
		}
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}

	sc := reformat.NewScanner(src)
	if sep != "" {
		if _, err := scanio.CopyScannerWith(out, sc, []byte(sep)); err != nil {
			log.Fatalf("write error: %v", err)
		}
		return
	}

	n := 0
	if err := cliutil.WriteLines(out, func(w io.Writer, _ func()) bool {
		if !sc.Scan() {
			return false
		}
		n++

		width, _ := fmt.Fprintf(w, "%v. ", n)
		itemOut := cliutil.NewPrefixWriter(strings.Repeat(" ", width), w)
		itemOut.Skip = true
		defer itemOut.Close()
		defer addLogPrefix(itemOut.Prefix)()

		tok := sc.Token()
		fmt.Fprintf(itemOut, "%+v", tok)
		if tok.Kind == reformat.TagToken {
			fmt.Fprintf(itemOut, " %v", reformat.ParseTag(sc.Bytes()))
		}
		fmt.Fprintf(itemOut, " %q\n", sc.Bytes())

		if verbose {
			io.WriteString(itemOut, "```hexdump\n")
			dumper := hex.Dumper(itemOut)
			dumper.Write(sc.Bytes())
			dumper.Close()
			io.WriteString(itemOut, "```\n")
		}
		return true
	}); err != nil {
		log.Fatalf("write error: %v", err)
	}

	if err := sc.Err(); err != nil {
		fmt.Printf("# main scan error\n%T: %v\n", err, err)
		os.Exit(1)
	}
}
