// Package translate formats user-facing messages in the user's language.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the system reports no locale.
const DefaultLocale = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Printer returns the message printer for the user's preferred locales.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Debugf("duet: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{DefaultLocale}
		}

		printer = message.NewPrinter(message.MatchLanguage(locales...))
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
