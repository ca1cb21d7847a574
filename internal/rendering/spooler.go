package rendering

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultPrintCommand is the host print command used when none is configured.
const DefaultPrintCommand = "lp"

// PDFPrinter produces a printable PDF from rendered HTML.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// CommandSpooler prints by piping a PDF into a host command such as lp.
type CommandSpooler struct {
	Printer PDFPrinter
	Command string
	Args    []string
}

// NewCommandSpooler parses command ("lp -d office") into a spooler.
func NewCommandSpooler(printer PDFPrinter, command string) *CommandSpooler {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = []string{DefaultPrintCommand}
	}
	return &CommandSpooler{Printer: printer, Command: fields[0], Args: fields[1:]}
}

// Spool renders html to PDF and sends it to the print command on stdin.
func (s *CommandSpooler) Spool(ctx context.Context, html string) error {
	pdf, err := s.Printer.PrintPDF(ctx, html)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, s.Command, s.Args...)
	cmd.Stdin = bytes.NewReader(pdf)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.Command, err, msg)
		}
		return fmt.Errorf("%s: %w", s.Command, err)
	}
	return nil
}
