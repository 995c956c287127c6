package codec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/tbf/errs"
)

// normalizeEncoding canonicalizes the handful of encoding name spellings a
// header is allowed to declare. Anything else is passed through lowercase
// so the caller's error message echoes what was actually declared.
func normalizeEncoding(name string) string {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return "utf-8"
	case "ascii", "us-ascii":
		return "ascii"
	case "latin-1", "latin1", "iso-8859-1":
		return "latin-1"
	default:
		return strings.ToLower(name)
	}
}

// encodeString converts a layer or attribute name to the bytes written to
// the wire under the document's declared encoding.
//
// utf-8 is Go's native string representation, so that case is a direct
// conversion. ascii and latin-1 are both trivial fixed single-byte-per-rune
// mappings with no state and no ambiguity, so they are implemented directly
// against unicode/utf8 rather than pulling in a general charset-conversion
// dependency for two closed-form cases spec.md names by example.
func encodeString(s, encoding string) ([]byte, error) {
	switch normalizeEncoding(encoding) {
	case "utf-8":
		return []byte(s), nil
	case "ascii":
		b := make([]byte, 0, len(s))
		for _, r := range s {
			if r > unicode.MaxASCII {
				return nil, fmt.Errorf("%w: rune %q not representable in ascii", errs.ErrBadEncoding, r)
			}
			b = append(b, byte(r))
		}

		return b, nil
	case "latin-1":
		b := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xFF {
				return nil, fmt.Errorf("%w: rune %q not representable in latin-1", errs.ErrBadEncoding, r)
			}
			b = append(b, byte(r))
		}

		return b, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", errs.ErrBadEncoding, encoding)
	}
}

// decodeString is encodeString's inverse, applied to bytes read off the
// wire.
func decodeString(b []byte, encoding string) (string, error) {
	switch normalizeEncoding(encoding) {
	case "utf-8":
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid utf-8 byte sequence", errs.ErrBadTextEncoding)
		}

		return string(b), nil
	case "ascii":
		for _, c := range b {
			if c > unicode.MaxASCII {
				return "", fmt.Errorf("%w: byte 0x%02x not valid ascii", errs.ErrBadTextEncoding, c)
			}
		}

		return string(b), nil
	case "latin-1":
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}

		return string(runes), nil
	default:
		return "", fmt.Errorf("%w: unknown encoding %q", errs.ErrBadTextEncoding, encoding)
	}
}
