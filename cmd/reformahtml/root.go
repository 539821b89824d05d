package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	diff "github.com/shogoki/gotextdiff"
	"github.com/spf13/cobra"

	"github.com/jcorbin/reformahtml/internal/mdverify"
	"github.com/jcorbin/reformahtml/reformat"
)

var (
	errWouldChange   = errors.New("would be reformatted")
	errTerminalInput = errors.New("refusing to read from a terminal")
)

type options struct {
	markdown   bool
	noMarkdown bool
	diff       bool
	check      bool
	verify     bool
	verbose    bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "reformahtml [flags] input [output]",
		Short: "Reflow soft-wrapped prose in HTML and Bikeshed sources",
		Long: `reformahtml joins the soft-wrapped lines of paragraphs in an HTML or
Bikeshed document, keeping blank lines, indentation, <pre> and other raw text
elements, and anything under a data-noreformat element exactly as written.

Markdown-aware reflow is on by default for .bs inputs.

Examples:
  reformahtml index.bs                 # rewrite in place
  reformahtml -d index.bs              # show what would change
  reformahtml --check page.html        # fail if page.html is not reflowed
  reformahtml - < in.html > out.html`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			j := job{options: opts, in: args[0], out: args[0]}
			if len(args) > 1 {
				j.out = args[1]
			}
			return j.run(stdin, stdout)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.markdown, "markdown", false, "enable Markdown-aware reflow")
	flags.BoolVar(&opts.noMarkdown, "no-markdown", false, "disable Markdown-aware reflow; wins over --markdown")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "print a unified diff instead of writing output")
	flags.BoolVar(&opts.check, "check", false, "write nothing; fail if the input would change")
	flags.BoolVar(&opts.verify, "verify", false, "refuse output whose Markdown block structure differs from the input")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log what is done to each file")
	return cmd
}

type job struct {
	options
	in, out string
}

func (j job) markdownEnabled() bool {
	switch {
	case j.noMarkdown:
		return false
	case j.markdown:
		return true
	}
	return strings.EqualFold(filepath.Ext(j.in), ".bs")
}

func (j job) run(stdin io.Reader, stdout io.Writer) error {
	src, mode, err := readInput(j.in, stdin)
	if err != nil {
		return err
	}

	md := j.markdownEnabled()
	out := reformat.Transform(src, md)
	changed := !bytes.Equal(src, out)
	if j.verbose {
		log.Printf("%v: markdown=%v changed=%v", j.in, md, changed)
	}

	if md && j.verify {
		if err := mdverify.Verify(src, out); err != nil {
			return fmt.Errorf("%v: %w", j.in, err)
		}
	}

	switch {
	case j.diff:
		if changed {
			_, err := stdout.Write(diff.Diff(j.in, src, j.out, out))
			return err
		}
		return nil

	case j.check:
		if changed {
			return fmt.Errorf("%v: %w", j.in, errWouldChange)
		}
		return nil

	case j.out == j.in && j.in != "-" && !changed:
		return nil
	}

	return writeOutput(j.out, out, mode, stdout)
}
