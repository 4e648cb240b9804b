package core

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Rorical/RoriSelect/internal/option"
)

func fold(s string) string {
	return cases.Fold().String(s)
}

// Filter keeps the options whose primary or secondary label contains query,
// ignoring case. Source order is preserved. An empty query keeps everything.
func Filter(opts []option.Option, query string) []option.Option {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return opts
	}

	out := make([]option.Option, 0, len(opts))
	for _, o := range opts {
		if strings.Contains(fold(o.PrimaryLabel), q) || strings.Contains(fold(o.SecondaryLabel), q) {
			out = append(out, o)
		}
	}
	return out
}

// HasExactMatch reports whether some option's primary label equals the
// trimmed query, ignoring case. Secondary labels never count.
func HasExactMatch(opts []option.Option, query string) bool {
	q := fold(strings.TrimSpace(query))
	for _, o := range opts {
		if fold(o.PrimaryLabel) == q {
			return true
		}
	}
	return false
}
