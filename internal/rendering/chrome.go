package rendering

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Viewport used for rasterization, A4 at 96 dpi.
const (
	ViewportWidth  = 794
	ViewportHeight = 1123
)

// Browser is a headless Chrome instance shared by the rasterize, paginate
// and print stages.
type Browser struct {
	cancelAlloc context.CancelFunc
	browserCtx  context.Context
	cancel      context.CancelFunc
	logger      *slog.Logger
}

// NewBrowser starts headless Chrome. execPath may be empty to use the
// system default.
func NewBrowser(ctx context.Context, execPath string, logger *slog.Logger) (*Browser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// Starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	logger.Debug("browser started", "exec_path", execPath)
	return &Browser{
		cancelAlloc: cancelAlloc,
		browserCtx:  browserCtx,
		cancel:      cancel,
		logger:      logger,
	}, nil
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancel()
	b.cancelAlloc()
}

// run executes actions in a fresh tab. The tab is closed when ctx ends.
func (b *Browser) run(ctx context.Context, actions ...chromedp.Action) error {
	tabCtx, cancel := chromedp.NewContext(b.browserCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(tabCtx, actions...)
}

// withPage writes html to a temporary file for the duration of fn.
func withPage(html string, fn func(url string) error) error {
	dir, err := os.MkdirTemp("", "resume-preview-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return err
	}
	return fn("file://" + path)
}

// Rasterize loads html and captures the preview root as a PNG. It fails
// when the page has no laid-out preview root.
func (b *Browser) Rasterize(ctx context.Context, html string) ([]byte, error) {
	var img []byte
	err := withPage(html, func(url string) error {
		var attached bool
		return b.run(ctx,
			emulation.SetDeviceMetricsOverride(ViewportWidth, ViewportHeight, 1, false),
			chromedp.Navigate(url),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.Evaluate(fmt.Sprintf(`(() => { const el = document.getElementById(%q); return !!el && el.getBoundingClientRect().height > 0; })()`, PreviewRootID), &attached),
			chromedp.ActionFunc(func(ctx context.Context) error {
				if !attached {
					return fmt.Errorf("preview root #%s is not attached or has no layout", PreviewRootID)
				}
				return chromedp.Screenshot("#"+PreviewRootID, &img, chromedp.ByQuery).Do(ctx)
			}),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("rasterize failed: %w", err)
	}
	b.logger.Debug("rasterized", "bytes", len(img))
	return img, nil
}

// Paginate embeds img into a page sized by layout and prints it to PDF.
func (b *Browser) Paginate(ctx context.Context, img []byte, layout PageLayout) ([]byte, error) {
	html := fmt.Sprintf(`<!DOCTYPE html><html><head><style>
@page { size: %.2fmm %.2fmm; margin: 0; }
html, body { margin: 0; padding: 0; }
img { display: block; width: %.2fmm; height: %.2fmm; }
</style></head><body><img src="data:image/png;base64,%s"></body></html>`,
		layout.PageWidthMM, layout.PageHeightMM,
		layout.ImageWidthMM, layout.ImageHeightMM,
		base64.StdEncoding.EncodeToString(img))

	var pdf []byte
	err := withPage(html, func(url string) error {
		return b.run(ctx,
			chromedp.Navigate(url),
			chromedp.WaitReady("img", chromedp.ByQuery),
			chromedp.ActionFunc(func(ctx context.Context) error {
				var err error
				pdf, _, err = page.PrintToPDF().
					WithPrintBackground(true).
					WithPaperWidth(layout.PaperWidthInches()).
					WithPaperHeight(layout.PaperHeightInches()).
					WithMarginTop(0).
					WithMarginBottom(0).
					WithMarginLeft(0).
					WithMarginRight(0).
					WithPageRanges("1").
					Do(ctx)
				return err
			}),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("paginate failed: %w", err)
	}
	return pdf, nil
}

// PrintPDF renders html as a vector A4 PDF for the host printer.
func (b *Browser) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	var pdf []byte
	err := withPage(html, func(url string) error {
		return b.run(ctx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.ActionFunc(func(ctx context.Context) error {
				var err error
				pdf, _, err = page.PrintToPDF().
					WithPrintBackground(true).
					WithPaperWidth(PageWidthMM / mmPerInch).
					WithPaperHeight(PageHeightMM / mmPerInch).
					Do(ctx)
				return err
			}),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("print render failed: %w", err)
	}
	return pdf, nil
}
