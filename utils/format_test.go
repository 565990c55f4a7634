package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestFormat_DecoratorPlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	d := NewDecorator(&buf)

	assert.Equal(t, "ok", d.Text("ok", SuccessMessage))
	assert.Equal(t, "failed", d.Text("failed", ErrorMessage))
}

func TestFormat_DecoratorColors(t *testing.T) {
	var buf bytes.Buffer
	d := NewDecorator(&buf)
	d.SetColorProfile(termenv.ANSI)

	success := d.Text("ok", SuccessMessage)
	failure := d.Text("ok", ErrorMessage)
	assert.Contains(t, success, "ok")
	assert.NotEqual(t, "ok", success)
	assert.NotEqual(t, success, failure)
	assert.Equal(t, "ok", d.Text("ok", DefaultMessage))
	assert.Equal(t, "plain", d.Text("plain", MessageType(42)))
}

func TestFormat_FormatTime(t *testing.T) {
	cases := map[time.Duration]string{
		1500 * time.Millisecond:                    "1.50s",
		2*time.Minute + 3*time.Second:              "2m 3.00s",
		time.Hour + 2*time.Minute + 3*time.Second:  "1h 2m 3.00s",
		26*time.Hour + 2*time.Minute + time.Second: "1d 2h 2m 1.00s",
	}
	for d, expected := range cases {
		if got := FormatTime(d); got != expected {
			t.Errorf("FormatTime(%v): expected %q, got %q", d, expected, got)
		}
	}
}
