package adapter

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"

	m "github.com/mouse-blink/mdcover/internal/model"
)

// ErrUnsupportedEncoding is returned when content is neither UTF-8 nor GBK.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Decode converts raw document bytes to text. UTF-8 is tried first, then GBK.
// The GBK decoder substitutes U+FFFD for invalid sequences instead of failing,
// so any replacement character in its output is treated as a decode failure.
func Decode(raw []byte) (string, m.Encoding, error) {
	if utf8.Valid(raw) {
		return string(raw), m.EncodingUTF8, nil
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		return "", "", ErrUnsupportedEncoding
	}

	text := string(decoded)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", "", ErrUnsupportedEncoding
	}

	return text, m.EncodingGBK, nil
}
