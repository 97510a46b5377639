package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// US court stock only: case summaries print on letter paper, and the
// longer legal page stays available for filings.
const (
	PaperLetter = "letter"
	PaperLegal  = "legal"
)

var paperSizes = map[string]struct{ width, height float64 }{
	PaperLetter: {8.5, 11.0},
	PaperLegal:  {8.5, 14.0},
}

const (
	// documentMargin is the standard one-inch margin, in inches.
	documentMargin = 1.0

	// renderSettle gives Chrome time to lay out the injected document
	// before printing.
	renderSettle = 100 * time.Millisecond

	renderTimeout = 30 * time.Second
)

// RenderPDF prints an HTML document to PDF through headless Chrome.
// CHROME_PATH overrides the browser binary; the Docker image points it
// at headless-shell.
func RenderPDF(ctx context.Context, htmlContent, paperSize string) ([]byte, error) {
	size, ok := paperSizes[paperSize]
	if !ok {
		return nil, fmt.Errorf("unsupported paper size %q", paperSize)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	ctx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.Sleep(renderSettle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(size.width).
				WithPaperHeight(size.height).
				WithMarginTop(documentMargin).
				WithMarginBottom(documentMargin).
				WithMarginLeft(documentMargin).
				WithMarginRight(documentMargin).
				WithPrintBackground(true).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdfBuf, nil
}
