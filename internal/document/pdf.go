package document

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Converter turns rendered slip markup into PDF bytes. The conversion either
// succeeds fully or fails with an error; callers never receive partial bytes.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// A4 page geometry in inches, matching the fixed letterhead layout.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	pageMarginIn  = 0.3
)

// defaultConvertTimeout bounds a single print job so a hung Chrome tab
// cannot stall a download request forever.
const defaultConvertTimeout = 30 * time.Second

// RodConverter prints HTML through a shared headless Chrome instance.
type RodConverter struct {
	browser *rod.Browser
	timeout time.Duration
}

// NewRodConverter launches headless Chrome and connects to it. The returned
// converter is safe for concurrent use; each Convert call runs in its own tab.
func NewRodConverter() (*RodConverter, error) {
	u, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodConverter{browser: browser, timeout: defaultConvertTimeout}, nil
}

func (c *RodConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for page load: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		Landscape:       false,
		PrintBackground: true,
		PaperWidth:      f(paperWidthIn),
		PaperHeight:     f(paperHeightIn),
		MarginTop:       f(pageMarginIn),
		MarginBottom:    f(pageMarginIn),
		MarginLeft:      f(pageMarginIn),
		MarginRight:     f(pageMarginIn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}
	return pdf, nil
}

// Close shuts down the underlying browser.
func (c *RodConverter) Close() error {
	return c.browser.Close()
}

func f(v float64) *float64 {
	return &v
}
