package count

import (
	"bufio"
	"io"
)

// MaxWordLen bounds a single word in bytes. Bytes past the bound are
// dropped; the run is still emitted as one truncated word.
const MaxWordLen = 127

// Tokenize consumes r until EOF or read error, invoking sink exactly once
// for every maximal run of ASCII letters, folded to lowercase.
//
// A word is only recognized when a non-letter byte follows it, so a
// trailing run cut off by EOF is dropped, not flushed.
//
// Read errors other than EOF and errors returned by the sink stop the scan
// and are returned to the caller.
func Tokenize(r io.Reader, sink func(word string) error) error {
	br := bufio.NewReader(r)
	buf := make([]byte, 0, MaxWordLen)
	inWord := false

	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if isLetter(c) {
			inWord = true
			if len(buf) < MaxWordLen {
				buf = append(buf, lower(c))
			}
			continue
		}

		if inWord {
			if err := sink(string(buf)); err != nil {
				return err
			}
			buf = buf[:0]
			inWord = false
		}
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
