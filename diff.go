package domtree

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// traceMutation captures the document dump before a mutation and returns
// a func that, run deferred, logs the before/after diff at debug level.
// With Config.Debug at zero it returns a no-op without touching the tree.
func (d *DOMBuilder) traceMutation(method string) func() {
	if d.config.Debug == 0 {
		return noTrace
	}
	before := d.DocumentString()
	return func() {
		after := d.DocumentString()
		if before == after {
			return
		}
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(before, after, true)
		d.log.WithField("method", method).Debugf("[TREE]: %s\n\n", dmp.DiffPrettyText(diffs))
	}
}

func noTrace() {}
