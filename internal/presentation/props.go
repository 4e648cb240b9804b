package presentation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/option"
)

// Config holds the static display configuration of one dropdown.
type Config struct {
	// EnableCreate offers a create row when the search text has no exact match.
	EnableCreate bool `mapstructure:"enable_create" default:"true"`
	// EnableClear shows the clear indicator while a value is selected.
	EnableClear bool `mapstructure:"enable_clear" default:"true"`
	// EnableSearch lets the user type to filter the options.
	EnableSearch bool `mapstructure:"enable_search" default:"true"`
	// UseAvatar renders the image of each option.
	UseAvatar bool `mapstructure:"use_avatar" default:"true"`
	// UseDefaultStyle renders the bordered default control style.
	UseDefaultStyle bool   `mapstructure:"use_default_style" default:"true"`
	Placeholder     string `mapstructure:"placeholder" default:"Select..."`
	// ClassNamePrefix names the widget instance in the status bar.
	ClassNamePrefix string `mapstructure:"class_name_prefix" default:"roriselect"`
	// MenuHeight caps the number of visible menu rows; 0 means no cap.
	MenuHeight int `mapstructure:"menu_height" default:"8"`
}

// Settings extracts the switches the state machine cares about.
func (c Config) Settings() core.Settings {
	return core.Settings{
		EnableCreate: c.EnableCreate,
		EnableClear:  c.EnableClear,
		EnableSearch: c.EnableSearch,
	}
}

type AvatarProps struct {
	URL         string
	Placeholder bool
	Glyph       string
}

type OptionProps struct {
	Key         string
	Label       string
	Secondary   string
	Avatar      *AvatarProps
	Selected    bool
	Highlighted bool
}

type CreateProps struct {
	Text        string
	Label       string
	Highlighted bool
}

// Props is what a generic combobox primitive needs to draw one frame.
type Props struct {
	Prefix          string
	Phase           core.Phase
	DefaultStyle    bool
	Clearable       bool
	Loading         bool
	MenuOpen        bool
	MenuHeight      int
	InputValue      string
	Placeholder     string
	ShowPlaceholder bool
	Value           *OptionProps
	Options         []OptionProps
	Create          *CreateProps
}

// Bind maps a UI state onto combobox props.
func Bind(st core.UIState, cfg Config) Props {
	p := Props{
		Prefix:       cfg.ClassNamePrefix,
		Phase:        st.Phase,
		DefaultStyle: cfg.UseDefaultStyle,
		Loading:      st.LoadingIndicator,
		MenuOpen:     st.MenuOpen,
		MenuHeight:   cfg.MenuHeight,
		InputValue:   st.Query,
		Placeholder:  cfg.Placeholder,
	}

	selected, hasSelection := st.Selection.Option()
	p.Clearable = cfg.EnableClear && hasSelection
	if st.Query == "" {
		if hasSelection {
			p.Value = &OptionProps{
				Key:       selected.SourceKey,
				Label:     selected.PrimaryLabel,
				Secondary: selected.SecondaryLabel,
				Selected:  true,
			}
			if cfg.UseAvatar {
				p.Value.Avatar = avatar(selected.Image, selected.PrimaryLabel)
			}
		} else {
			p.ShowPlaceholder = true
		}
	}

	p.Options = make([]OptionProps, 0, len(st.VisibleOptions))
	for i, o := range st.VisibleOptions {
		op := OptionProps{
			Key:         o.SourceKey,
			Label:       o.PrimaryLabel,
			Secondary:   o.SecondaryLabel,
			Selected:    hasSelection && o.SourceKey != "" && o.Same(selected),
			Highlighted: i == st.Highlighted,
		}
		if cfg.UseAvatar {
			op.Avatar = avatar(o.Image, o.PrimaryLabel)
		}
		p.Options = append(p.Options, op)
	}

	if st.OfferCreate != nil {
		p.Create = &CreateProps{
			Text:        st.OfferCreate.RawText,
			Label:       st.OfferCreate.Label(),
			Highlighted: st.Highlighted == len(st.VisibleOptions),
		}
	}
	return p
}

// avatar falls back to the label's initial when the option has no image.
func avatar(img *option.ImageRef, label string) *AvatarProps {
	if img != nil && img.URL != "" {
		return &AvatarProps{URL: img.URL}
	}
	glyph := "?"
	if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(label)); r != utf8.RuneError {
		glyph = string(unicode.ToUpper(r))
	}
	return &AvatarProps{Placeholder: true, Glyph: glyph}
}
