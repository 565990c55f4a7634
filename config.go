package primejudge

import "fmt"

const (
	defaultWidth  = 480
	defaultHeight = 360
	windowTitle   = "Prime Number Judger"

	// Footer is displayed verbatim at the bottom of the window.
	Footer = "github.com/esimov/primejudge · MIT License"
)

// Config holds the options the window is started with.
type Config struct {
	Input  int64
	Theme  ThemeName
	Width  int
	Height int
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Theme:  LightTheme,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}

// Validate checks the window size and the theme name.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := ParseTheme(string(c.Theme)); err != nil {
		return err
	}
	return nil
}
