package testparser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropIllFormed is a transform.Transformer that copies valid UTF-8 and
// silently discards every byte that does not start a well-formed sequence.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// IgnoreInvalid returns a transformer that drops ill-formed UTF-8 bytes.
func IgnoreInvalid() transform.Transformer {
	return dropIllFormed{}
}

// Decode converts raw log bytes to text. Invalid UTF-8 is dropped and
// CRLF and lone CR line endings become LF.
func Decode(b []byte) string {
	out, _, err := transform.Bytes(IgnoreInvalid(), b)
	if err != nil {
		// dropIllFormed never reports an error at EOF.
		out = b
	}
	return normalizeNewlines(string(out))
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
