package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-editor/internal/portable"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/session"
	"github.com/jonathan/resume-editor/internal/types"
)

// loadDocument reads path, falling back to the configured document and then
// to the seed document.
func loadDocument(path string) (types.Document, error) {
	if path == "" {
		path = cfg.Document
	}
	if path == "" {
		return types.DefaultDocument(), nil
	}
	doc, err := portable.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

// presentation builds the presentation choices from the configuration.
func presentation() (rendering.Presentation, error) {
	font, err := rendering.ParseFont(cfg.Font)
	if err != nil {
		return rendering.Presentation{}, err
	}
	theme, err := rendering.ParseTheme(cfg.Theme)
	if err != nil {
		return rendering.Presentation{}, err
	}
	return rendering.Presentation{Font: font, Theme: theme, DarkMode: cfg.DarkMode}, nil
}

// newRenderer starts a headless browser and wires the export and print
// pipeline to it. The returned close function stops the browser.
func newRenderer(ctx context.Context) (*rendering.Pipeline, func(), error) {
	browser, err := rendering.NewBrowser(ctx, cfg.ChromePath, logger)
	if err != nil {
		return nil, nil, err
	}
	spooler := rendering.NewCommandSpooler(browser, cfg.PrintCommand)
	return rendering.NewPipeline(browser, spooler, logger), browser.Close, nil
}

// newSession creates a session over doc with the configured presentation.
func newSession(doc types.Document) (*session.Session, error) {
	pres, err := presentation()
	if err != nil {
		return nil, err
	}
	sess := session.New(doc, logger)
	sess.Presentation = pres
	return sess, nil
}
