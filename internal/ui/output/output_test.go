package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.ColorProfileANSI())
}

func TestNew_WritesThrough(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	out := output.New(&buf)

	_, _ = out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())
	assert.Equal(t, "plain", buf.String())
}

func TestForCI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	out := output.ForCI(&buf, true)
	assert.Equal(t, termenv.ANSI, out.Profile)

	assert.NotPanics(t, func() { output.ForCI(nil, false) })
}
