package rendering

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrinter struct {
	pdf []byte
	err error
}

func (f *fakePrinter) PrintPDF(context.Context, string) ([]byte, error) {
	return f.pdf, f.err
}

func TestNewCommandSpooler(t *testing.T) {
	s := NewCommandSpooler(nil, "lp -d office")
	assert.Equal(t, "lp", s.Command)
	assert.Equal(t, []string{"-d", "office"}, s.Args)

	s = NewCommandSpooler(nil, "  ")
	assert.Equal(t, DefaultPrintCommand, s.Command)
	assert.Empty(t, s.Args)
}

func TestCommandSpooler_Spool(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	s := NewCommandSpooler(&fakePrinter{pdf: []byte("%PDF-1.4")}, "cat")
	assert.NoError(t, s.Spool(context.Background(), "<html></html>"))
}

func TestCommandSpooler_CommandFails(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	s := NewCommandSpooler(&fakePrinter{pdf: []byte("%PDF-1.4")}, "false")
	err := s.Spool(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "false")
}

func TestCommandSpooler_PrinterFails(t *testing.T) {
	s := NewCommandSpooler(&fakePrinter{err: errors.New("chrome gone")}, "cat")
	err := s.Spool(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome gone")
}
