package fsops

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"fsutil/internal/errors"
)

type decodeFunc func([]byte) string

var encodings = map[string]decodeFunc{
	"":       decodeUTF8,
	"utf8":   decodeUTF8,
	"utf-8":  decodeUTF8,
	"latin1": decodeLatin1,
	"binary": decodeLatin1,
	"ascii":  decodeASCII,
	"base64": base64.StdEncoding.EncodeToString,
	"hex":    hex.EncodeToString,
}

func lookupEncoding(name string) (decodeFunc, error) {
	codec, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, errors.NewValidationError("encoding", name, "supported_values",
			"encoding must be one of: utf8, latin1, ascii, base64, hex")
	}
	return codec, nil
}

func decodeUTF8(data []byte) string {
	return string(data)
}

// decodeLatin1 maps every byte onto the code point of the same value.
func decodeLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// decodeASCII drops the high bit of every byte.
func decodeASCII(data []byte) string {
	out := make([]byte, len(data))
	for i, c := range data {
		out[i] = c & 0x7f
	}
	return string(out)
}
