// Package textenc resolves the character encoding used for the delimited opcode table.
package textenc

import (
	"errors"
	"io"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/Manu343726/isatable/pkg/utils"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding name that selects the encoding of the host locale
const Host = "host"

var ErrUnknownEncoding = errors.New("unknown text encoding")

// Locale variables in POSIX precedence order
var localeVariables = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Returns the encoding registered with the given name. "host" (or an empty name)
// selects the encoding of the host locale.
func Resolve(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Host:
		return HostEncoding(), nil
	}

	return lookup(name)
}

// Returns the encoding of the host locale
func HostEncoding() encoding.Encoding {
	return hostEncoding(os.Getenv, runtime.GOOS)
}

func hostEncoding(getenv func(string) string, goos string) encoding.Encoding {
	for _, variable := range localeVariables {
		value := getenv(variable)
		if value == "" {
			continue
		}

		// The first variable set wins even if it carries no charset (e.g. LC_ALL=C)
		if charset := charsetOf(value); charset != "" {
			if enc, err := lookup(charset); err == nil {
				return enc
			}
		}
		break
	}

	if goos == "windows" {
		return charmap.Windows1252
	}

	return unicode.UTF8
}

// Extracts the codeset of a locale name like "fr_FR.ISO-8859-1@euro"
func charsetOf(locale string) string {
	_, codeset, found := strings.Cut(locale, ".")
	if !found {
		return ""
	}

	codeset, _, _ = strings.Cut(codeset, "@")
	return codeset
}

// glibc and BSD codeset spellings, compacted as in compactCharset()
var (
	isoCharset     = regexp.MustCompile(`^iso8859(\d+)$`)
	windowsCharset = regexp.MustCompile(`^(?:cp|windows|ansi)(125\d)$`)
)

// Lower cases a charset name and drops its separators: "ISO8859-15" -> "iso885915"
func compactCharset(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Returns the IANA spelling of locale codesets like "iso88591", "ISO8859-15" or "CP1252"
func canonicalCharset(name string) string {
	compact := compactCharset(name)

	if match := isoCharset.FindStringSubmatch(compact); match != nil {
		return "ISO-8859-" + match[1]
	}

	if match := windowsCharset.FindStringSubmatch(compact); match != nil {
		return "windows-" + match[1]
	}

	return strings.TrimSpace(name)
}

func lookup(name string) (encoding.Encoding, error) {
	if compactCharset(name) == "utf8" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(canonicalCharset(name))
	if err != nil || enc == nil {
		return nil, utils.MakeError(ErrUnknownEncoding, "'%v'", name)
	}

	return enc, nil
}

// Returns the MIME name of an encoding
func Name(enc encoding.Encoding) string {
	if enc == nil {
		return "UTF-8"
	}

	name, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return "unknown"
	}

	return name
}

// Returns a writer that encodes UTF-8 text into the given encoding. Text the encoding
// cannot represent makes Write fail. Close flushes pending output without closing w.
func NewWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	if enc == nil {
		enc = unicode.UTF8
	}

	return transform.NewWriter(w, enc.NewEncoder())
}

// Returns a reader that decodes text in the given encoding into UTF-8
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		enc = unicode.UTF8
	}

	return transform.NewReader(r, enc.NewDecoder())
}
