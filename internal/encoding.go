// Package internal provides character encoding detection and conversion for
// plain-text input documents.
package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FallbackCharset is assumed for input that is neither marked by a BOM nor
// valid UTF-8.
const FallbackCharset = "windows-1252"

// ErrUnknownCharset is returned for a charset name with no known decoder.
var ErrUnknownCharset = errors.New("unknown charset")

// DetectCharset guesses the encoding of a plain-text document from its byte
// order mark, then whether the whole of data is valid UTF-8, and failing
// both, FallbackCharset.
func DetectCharset(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return "utf-8"
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16be"
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16le"
	}

	// Legacy bytes may first appear past the sample.
	sample := data
	if len(sample) > sniffSampleSize {
		sample = trimPartialRune(sample[:sniffSampleSize])
	}
	if utf8.Valid(sample) && utf8.Valid(data[len(sample):]) {
		return "utf-8"
	}
	return FallbackCharset
}

// trimPartialRune drops a truncated multi-byte sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

// DecodeText converts data to a UTF-8 string. An empty charset triggers
// detection. The charset actually used is returned.
func DecodeText(data []byte, charset string) (string, string, error) {
	if charset == "" {
		charset = DetectCharset(data)
	}
	charset = NormalizeCharset(charset)

	if charset == "utf-8" {
		return string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})), charset, nil
	}
	enc := lookupEncoding(charset)
	if enc == nil {
		return "", charset, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", charset, fmt.Errorf("decode %s: %w", charset, err)
	}
	return string(decoded), charset, nil
}

// KnownCharset reports whether DecodeText can decode charset.
func KnownCharset(charset string) bool {
	charset = NormalizeCharset(charset)
	return charset == "utf-8" || lookupEncoding(charset) != nil
}

// NormalizeCharset maps common aliases onto the names lookupEncoding knows.
func NormalizeCharset(charset string) string {
	charset = strings.ToLower(strings.TrimSpace(charset))
	switch charset {
	case "utf8":
		return "utf-8"
	case "latin1", "latin-1", "iso8859-1", "iso_8859-1":
		return "iso-8859-1"
	case "cp1252", "win1252":
		return "windows-1252"
	case "cp1251", "win1251":
		return "windows-1251"
	case "sjis", "shift-jis":
		return "shift_jis"
	case "gb2312":
		return "gbk"
	}
	return charset
}

func lookupEncoding(charset string) encoding.Encoding {
	switch charset {
	case "windows-1252":
		return charmap.Windows1252
	case "windows-1251":
		return charmap.Windows1251
	case "windows-1250":
		return charmap.Windows1250
	case "iso-8859-1":
		return charmap.ISO8859_1
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "koi8-r":
		return charmap.KOI8R
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "shift_jis":
		return japanese.ShiftJIS
	case "euc-jp":
		return japanese.EUCJP
	case "euc-kr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
