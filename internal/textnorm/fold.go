package textnorm

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// spaceFolder drops leading and trailing whitespace and replaces every
// internal whitespace run with one ASCII space.
type spaceFolder struct {
	started bool
	inSpan  bool
}

var _ transform.Transformer = (*spaceFolder)(nil)

func (f *spaceFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if f.started {
				f.inSpan = true
			}
			continue
		}

		need := utf8.RuneLen(c)
		if f.inSpan {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.inSpan {
			dst[nDst] = ' '
			nDst++
			f.inSpan = false
		}
		// c may be RuneError with size 1; encode the replacement rune.
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		f.started = true
	}
	return nDst, nSrc, nil
}

func (f *spaceFolder) Reset() {
	*f = spaceFolder{}
}
