package primejudge

import (
	"bytes"
	"testing"

	"github.com/esimov/primejudge/utils"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestReport_WriteVerdicts(t *testing.T) {
	var buf bytes.Buffer
	err := WriteVerdicts(&buf, []Verdict{Judge(97), Judge(12), Judge(1), {Input: 5}})
	assert.NoError(t, err)

	expected := "97 ✔ prime\n" +
		"12 ✘ composite: 2, 3, 4, 6\n" +
		"1 ✘ invalid: must be greater than 1\n" +
		"5 unjudged\n"
	assert.Equal(t, expected, buf.String())
}

func TestReport_DecoratedOutput(t *testing.T) {
	var buf bytes.Buffer
	d := utils.NewDecorator(&buf)
	d.SetColorProfile(termenv.ANSI)

	line := FormatVerdict(d, Judge(7))
	assert.Contains(t, line, "✔ prime")
	assert.NotEqual(t, "7 ✔ prime", line)
}
