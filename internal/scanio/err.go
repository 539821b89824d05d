// Package scanio provides helpers around token scanners shaped like
// bufio.Scanner.
package scanio

// Scanner is the part of bufio.Scanner needed to walk a token stream.
type Scanner interface {
	Scan() bool
	Bytes() []byte
}

// ErrScanner is a Scanner that may stop early on an error.
type ErrScanner interface {
	Scanner
	Err() error
}

// ScanError returns the error retained by sc, if it is an ErrScanner.
func ScanError(sc Scanner) error {
	if esc, ok := sc.(ErrScanner); ok {
		return esc.Err()
	}
	return nil
}
