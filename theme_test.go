package primejudge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_Parse(t *testing.T) {
	name, err := ParseTheme(" Dark ")
	assert.NoError(t, err)
	assert.Equal(t, DarkTheme, name)

	name, err = ParseTheme("light")
	assert.NoError(t, err)
	assert.Equal(t, LightTheme, name)

	_, err = ParseTheme("solarized")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestTheme_LookupFallsBackToLight(t *testing.T) {
	assert.Equal(t, LightTheme, LookupTheme("nope").Name)
	assert.NotEqual(t, LookupTheme(LightTheme).Palette.Bg, LookupTheme(DarkTheme).Palette.Bg)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Theme = "blue"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownTheme)
}
