package dataset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/vvka-141/ksload/pkg/ksload"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode converts content to a Go string using the named encoding.
// Errors wrap ksload.ErrDecode.
func decode(content []byte, encoding string) (string, error) {
	switch ksload.NormalizeEncoding(encoding) {
	case ksload.EncodingUTF8:
		return decodeUTF8(content)
	case ksload.EncodingLatin1:
		return decodeLatin1(content)
	default:
		return "", fmt.Errorf("%w: unsupported encoding %q", ksload.ErrDecode, encoding)
	}
}

func decodeUTF8(content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return string(content), nil
	}
	pos := invalidUTF8Offset(content)
	return "", fmt.Errorf("%w: utf-8 cannot decode byte 0x%02x in position %d: invalid start or continuation byte",
		ksload.ErrDecode, content[pos], pos)
}

func decodeLatin1(content []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("%w: latin-1: %v", ksload.ErrDecode, err)
	}
	return string(out), nil
}

// invalidUTF8Offset returns the index of the first byte that starts an invalid sequence.
// content must not be valid UTF-8.
func invalidUTF8Offset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(content) - 1
}
