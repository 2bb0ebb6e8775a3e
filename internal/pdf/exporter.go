// Package pdf serializes rendered documents to PDF bytes through
// headless Chrome.
package pdf

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/render"
)

// Exporter converts a rendered Document into PDF bytes. Each export is
// independent; concurrent exports need no coordination beyond the
// shared circuit breaker.
type Exporter struct {
	cfg     *config.ExportConfig
	logger  *errors.Logger
	breaker *ExportCircuitBreaker
}

// NewExporter creates a PDF exporter.
func NewExporter(cfg *config.ExportConfig, logger *errors.Logger) *Exporter {
	return &Exporter{
		cfg:     cfg,
		logger:  logger,
		breaker: NewExportCircuitBreaker(&cfg.CircuitBreaker, logger),
	}
}

// Export renders the document to PDF. The context bounds the whole
// Chrome round trip; cancellation aborts the export.
func (e *Exporter) Export(ctx context.Context, doc *render.Document) ([]byte, error) {
	html := DocumentHTML(doc)

	data, err := e.breaker.Execute(func() ([]byte, error) {
		return e.printToPDF(ctx, html)
	})
	if err != nil {
		return nil, errors.NewExportError(
			errors.ErrCodeExportFailed,
			"render PDF through headless Chrome",
			err,
		).WithContext("template", doc.Template)
	}

	e.logger.Debug("PDF export completed",
		"template", doc.Template,
		"bytes", len(data))
	return data, nil
}

// IsHealthy reports whether the export breaker is closed.
func (e *Exporter) IsHealthy() bool {
	return e.breaker.IsHealthy()
}

// Stats returns circuit breaker statistics for the stats endpoint.
func (e *Exporter) Stats() map[string]any {
	return e.breaker.GetStats()
}

func (e *Exporter) printToPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.cfg.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Chrome needs a file URL; data URLs break font loading.
	tmpDir, err := os.MkdirTemp("", "resumeforge-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
