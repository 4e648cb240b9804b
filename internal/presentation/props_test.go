package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriSelect/internal/core"
	"github.com/Rorical/RoriSelect/internal/option"
)

var testConfig = Config{
	EnableCreate:    true,
	EnableClear:     true,
	EnableSearch:    true,
	UseAvatar:       true,
	Placeholder:     "Select...",
	ClassNamePrefix: "test",
	MenuHeight:      8,
}

func sampleOptions() []option.Option {
	return []option.Option{
		{PrimaryLabel: "label1", SecondaryLabel: "secondLabel1", Image: &option.ImageRef{URL: "url1"}, SourceKey: "1"},
		{PrimaryLabel: "label2", SecondaryLabel: "secondLabel2", SourceKey: "2"},
	}
}

func TestBind_Selection(t *testing.T) {
	opts := sampleOptions()
	st := core.UIState{
		Phase:          core.PhaseReady,
		VisibleOptions: opts,
		Selection:      core.Selected(opts[0]),
		MenuOpen:       true,
		Highlighted:    1,
	}

	p := Bind(st, testConfig)

	require.NotNil(t, p.Value)
	assert.Equal(t, "label1", p.Value.Label)
	assert.Equal(t, "url1", p.Value.Avatar.URL)
	assert.False(t, p.ShowPlaceholder)
	assert.True(t, p.Clearable)

	require.Len(t, p.Options, 2)
	assert.True(t, p.Options[0].Selected)
	assert.False(t, p.Options[0].Highlighted)
	assert.False(t, p.Options[1].Selected)
	assert.True(t, p.Options[1].Highlighted)
}

func TestBind_Placeholder(t *testing.T) {
	p := Bind(core.UIState{Phase: core.PhaseReady, Selection: core.None()}, testConfig)

	assert.Nil(t, p.Value)
	assert.True(t, p.ShowPlaceholder)
	assert.False(t, p.Clearable)
	assert.Equal(t, "Select...", p.Placeholder)
}

func TestBind_QueryHidesValue(t *testing.T) {
	opts := sampleOptions()
	p := Bind(core.UIState{Selection: core.Selected(opts[0]), Query: "lab"}, testConfig)

	assert.Nil(t, p.Value)
	assert.False(t, p.ShowPlaceholder)
	assert.Equal(t, "lab", p.InputValue)
}

func TestBind_ClearDisabled(t *testing.T) {
	cfg := testConfig
	cfg.EnableClear = false
	opts := sampleOptions()

	p := Bind(core.UIState{Selection: core.Selected(opts[0])}, cfg)
	assert.False(t, p.Clearable)
}

func TestBind_Create(t *testing.T) {
	st := core.UIState{
		Phase:       core.PhaseOfferingCreate,
		OfferCreate: &core.CreateOffer{RawText: "Cherry"},
		MenuOpen:    true,
		Query:       "Cherry",
	}

	p := Bind(st, testConfig)

	assert.Empty(t, p.Options)
	require.NotNil(t, p.Create)
	assert.Equal(t, "Cherry", p.Create.Text)
	assert.Equal(t, `Create "Cherry"`, p.Create.Label)
	assert.True(t, p.Create.Highlighted)
}

func TestBind_Avatars(t *testing.T) {
	st := core.UIState{VisibleOptions: sampleOptions()}

	p := Bind(st, testConfig)
	assert.Equal(t, &AvatarProps{URL: "url1"}, p.Options[0].Avatar)
	assert.Equal(t, &AvatarProps{Placeholder: true, Glyph: "L"}, p.Options[1].Avatar)

	cfg := testConfig
	cfg.UseAvatar = false
	p = Bind(st, cfg)
	assert.Nil(t, p.Options[0].Avatar)
}

func TestAvatar_EmptyLabel(t *testing.T) {
	assert.Equal(t, "?", avatar(nil, "  ").Glyph)
	assert.Equal(t, "É", avatar(nil, "école").Glyph)
}

func TestBind_CarriesPhaseAndPrefix(t *testing.T) {
	p := Bind(core.UIState{Phase: core.PhaseLoading}, testConfig)
	assert.Equal(t, core.PhaseLoading, p.Phase)
	assert.Equal(t, "test", p.Prefix)
}

func TestConfig_Settings(t *testing.T) {
	s := Config{EnableCreate: true, EnableSearch: true}.Settings()
	assert.Equal(t, core.Settings{EnableCreate: true, EnableSearch: true}, s)
}
