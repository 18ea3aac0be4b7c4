// Package translate formats user facing messages for the host locale.
package translate

import (
	"log/slog"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

// Returns the host locales, falling back to en-US
func Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		slog.Debug("cannot detect host locale", "error", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return locales
}

// Returns the tag of the first well formed locale, or en-US
func Language(locales ...string) language.Tag {
	for _, l := range locales {
		if tag, err := language.Parse(l); err == nil {
			return tag
		}
	}

	return language.AmericanEnglish
}

// Returns a printer for the first well formed locale
func NewPrinter(locales ...string) *message.Printer {
	return message.NewPrinter(Language(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	once.Do(func() {
		printer = NewPrinter(Locales()...)
	})

	return printer.Sprintf(key, args...)
}
