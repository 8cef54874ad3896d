package domtree

import (
	"github.com/sirupsen/logrus"
)

// Config carries the knobs a DOMBuilder honors. The zero value works:
// diagnostics go to the logrus standard logger and mutation tracing
// stays off.
type Config struct {
	// Logger receives the builder's diagnostics: parse errors at error
	// level, advisory protocol paths at warning level, mutation traces at
	// debug level. Nil selects logrus.StandardLogger().
	Logger logrus.FieldLogger

	// Debug greater than zero turns on tree-mutation tracing. Every
	// mutating operation then logs a diff of the document dump before and
	// after, at debug level.
	Debug uint
}
