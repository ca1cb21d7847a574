package validation

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-editor/internal/validation/validationtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPDFPages(t *testing.T) {
	for _, pages := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("%d pages", pages), func(t *testing.T) {
			count, err := CountPDFPages(validationtest.MinimalPDF(pages))
			require.NoError(t, err)
			assert.Equal(t, pages, count)
		})
	}
}

func TestCountPDFPages_Empty(t *testing.T) {
	_, err := CountPDFPages(nil)
	require.Error(t, err)
	var vErr *Error
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "PDF is empty")
}

func TestCountPDFPages_NotAPDF(t *testing.T) {
	_, err := CountPDFPages([]byte("definitely not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse PDF")
}

func TestRequireSinglePage(t *testing.T) {
	assert.NoError(t, RequireSinglePage(validationtest.MinimalPDF(1)))

	err := RequireSinglePage(validationtest.MinimalPDF(2))
	require.Error(t, err)
	var pcErr *PageCountError
	require.ErrorAs(t, err, &pcErr)
	assert.Equal(t, 2, pcErr.Actual)
}
