package scanio

import "io"

// CopyScanner writes the bytes of every token scanned from src into dst,
// stopping at the first write error.
func CopyScanner(dst io.Writer, src Scanner) (n int64, err error) {
	return CopyScannerWith(dst, src, nil)
}

// CopyScannerWith is CopyScanner with sep written between tokens, but not
// after the last one.
func CopyScannerWith(dst io.Writer, src Scanner, sep []byte) (n int64, err error) {
	for first := true; err == nil && src.Scan(); first = false {
		var m int
		if !first && len(sep) > 0 {
			if m, err = dst.Write(sep); err != nil {
				return n + int64(m), err
			}
			n += int64(m)
		}
		m, err = dst.Write(src.Bytes())
		n += int64(m)
	}
	if err == nil {
		err = ScanError(src)
	}
	return n, err
}
