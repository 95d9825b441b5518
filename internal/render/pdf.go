package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"pdfservice/internal/domain"
)

// Sentinel errors for browser-side failures.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create page")
	ErrPageLoad       = errors.New("failed to load page content")
	ErrPDFGeneration  = errors.New("failed to generate PDF")
)

// A4 page dimensions in inches. Documents print edge to edge with full
// background graphics.
const (
	a4WidthInches     = 8.27
	a4HeightInches    = 11.69
	networkIdleWindow = 500 * time.Millisecond
)

// PDFRenderer converts HTML to PDF bytes in headless Chrome via go-rod.
// The browser is launched lazily on first use and shared across requests;
// each render gets its own page.
type PDFRenderer struct {
	mu      sync.Mutex
	browser *rod.Browser

	// BrowserBin overrides the Chrome executable (containerized deployments).
	BrowserBin string
	Timeout    time.Duration
}

func NewPDFRenderer(browserBin string, timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PDFRenderer{BrowserBin: browserBin, Timeout: timeout}
}

func (r *PDFRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New()
	bin := r.BrowserBin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}
	// Sandboxing is unavailable inside most containers and CI runners.
	if os.Getenv("CI") == "true" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = browser
	return browser, nil
}

// Close releases the shared browser.
func (r *PDFRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	return err
}

// Render loads the HTML into a fresh page, waits for the network to go idle so
// remote images are fetched, and captures an A4 PDF with zero margins.
func (r *PDFRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: err}
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: fmt.Errorf("%w: %v", ErrPageCreate, err)}
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.Timeout)

	wait := page.WaitRequestIdle(networkIdleWindow, nil, nil, nil)
	if err := page.SetDocumentContent(html); err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: fmt.Errorf("%w: %v", ErrPageLoad, err)}
	}
	if err := page.WaitLoad(); err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: fmt.Errorf("%w: %v", ErrPageLoad, err)}
	}
	wait()

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(a4WidthInches),
		PaperHeight:       floatPtr(a4HeightInches),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: fmt.Errorf("%w: %v", ErrPDFGeneration, err)}
	}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, domain.RenderError{Stage: "pdf", Err: fmt.Errorf("%w: reading stream: %v", ErrPDFGeneration, err)}
	}
	return buf, nil
}

func floatPtr(v float64) *float64 { return &v }
