package iotabular

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts delimited-text bytes to a UTF-8 string with
// best-effort encoding recovery: strip a UTF-8 BOM, accept valid
// UTF-8, otherwise fall back to the permissive Windows-1252 decoding
// common in exported Argentine spreadsheets. An error is returned only
// when both decodings fail.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, bomUTF8)

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", EncodingError(err)
	}
	return string(decoded), nil
}
