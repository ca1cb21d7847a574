package rendering

import "fmt"

// A4 portrait dimensions in millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	mmPerInch    = 25.4
)

// PageLayout places a rasterized preview on a single page. The image spans
// the full page width and keeps its aspect ratio.
type PageLayout struct {
	PageWidthMM   float64
	PageHeightMM  float64
	ImageWidthMM  float64
	ImageHeightMM float64
}

// FitToPage scales an image of the given pixel size to the A4 page width.
// Images taller than the page extend the page so the result stays one page.
func FitToPage(pxWidth, pxHeight int) (PageLayout, error) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return PageLayout{}, fmt.Errorf("invalid image dimensions %dx%d", pxWidth, pxHeight)
	}
	imgHeight := float64(pxHeight) * PageWidthMM / float64(pxWidth)
	return PageLayout{
		PageWidthMM:   PageWidthMM,
		PageHeightMM:  max(PageHeightMM, imgHeight),
		ImageWidthMM:  PageWidthMM,
		ImageHeightMM: imgHeight,
	}, nil
}

// PaperWidthInches returns the page width in inches.
func (l PageLayout) PaperWidthInches() float64 {
	return l.PageWidthMM / mmPerInch
}

// PaperHeightInches returns the page height in inches.
func (l PageLayout) PaperHeightInches() float64 {
	return l.PageHeightMM / mmPerInch
}
