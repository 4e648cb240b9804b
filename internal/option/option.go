package option

import (
	"strings"

	"github.com/Rorical/RoriSelect/internal/feed"
)

// Field is one attribute of a backing record as the runtime exposes it.
type Field struct {
	Status  feed.Status
	Display string
}

// Text returns an available field holding s.
func Text(s string) Field {
	return Field{Status: feed.Available, Display: s}
}

// Record is a raw record supplied by the options or default-value feed.
type Record struct {
	Key       string
	Primary   Field
	Secondary Field
	Image     *Field
}

// ImageRef points at the avatar of an option.
type ImageRef struct {
	URL string
}

// Option is a renderable, selectable entity. SourceKey is its identity;
// labels are display text only.
type Option struct {
	PrimaryLabel   string
	SecondaryLabel string
	Image          *ImageRef
	SourceKey      string
}

// Same reports whether o and other are the same selectable entity.
func (o Option) Same(other Option) bool {
	return o.SourceKey == other.SourceKey
}

// Linked is the value behind the linked label and linked id handles.
type Linked struct {
	Label string
	ID    string
}

func (l Linked) Empty() bool {
	return l.Label == "" && l.ID == ""
}

// ToOption converts r into an Option. It reports false while a label is
// still loading or when the record is malformed; such records are left out
// of the visible set until they resolve.
func ToOption(r Record) (Option, bool) {
	if r.Key == "" {
		return Option{}, false
	}
	if r.Primary.Status != feed.Available || r.Secondary.Status != feed.Available {
		return Option{}, false
	}
	if strings.TrimSpace(r.Primary.Display) == "" {
		return Option{}, false
	}

	opt := Option{
		PrimaryLabel:   r.Primary.Display,
		SecondaryLabel: r.Secondary.Display,
		SourceKey:      r.Key,
	}
	// A missing or loading image falls back to the placeholder glyph.
	if r.Image != nil && r.Image.Status == feed.Available && r.Image.Display != "" {
		opt.Image = &ImageRef{URL: r.Image.Display}
	}
	return opt, true
}

// ToOptions converts records in order, skipping the ones that are not
// renderable yet.
func ToOptions(records []Record) []Option {
	opts := make([]Option, 0, len(records))
	for _, r := range records {
		if opt, ok := ToOption(r); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

// FromOption rebuilds the record an option was derived from.
func FromOption(o Option) Record {
	r := Record{
		Key:       o.SourceKey,
		Primary:   Text(o.PrimaryLabel),
		Secondary: Text(o.SecondaryLabel),
	}
	if o.Image != nil {
		img := Text(o.Image.URL)
		r.Image = &img
	}
	return r
}
