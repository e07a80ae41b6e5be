package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/FranciscoRecio/flights/internal/logger"
)

// Browser drives a locally installed Chrome via chromedp. It is the
// transport behind "local" mode: slower than the plain HTTP path but it
// renders the results the same way a signed-out visitor sees them.
type Browser struct {
	config    Config
	allocCtx  context.Context
	cancelCtx context.CancelFunc
}

// NewBrowser creates the local browser transport. The browser process
// itself starts lazily on the first Fetch.
func NewBrowser(cfg Config) *Browser {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		config:    cfg,
		allocCtx:  allocCtx,
		cancelCtx: cancelAlloc,
	}
}

// Fetch renders a results page in a headless browser and returns its HTML.
func (f *Browser) Fetch(_ context.Context, params Params) (Page, error) {
	requestURL := params.URL()
	logger.Debug("browser fetch starting", "url", requestURL)

	page := Page{FetchedAt: time.Now()}

	// Fresh browser tab per request.
	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, f.config.Timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(requestURL),
		chromedp.WaitReady("body"),
		// Result sections stream in after the initial document.
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return page, fmt.Errorf("browser automation failed: %w", err)
	}

	page.HTML = html
	page.StatusCode = http.StatusOK // chromedp doesn't easily expose status codes

	logger.Debug("browser fetch complete", "html_size", len(html))
	return page, nil
}

// Close releases browser resources.
func (f *Browser) Close() error {
	if f.cancelCtx != nil {
		f.cancelCtx()
	}
	return nil
}

// Type returns the transport type.
func (f *Browser) Type() string {
	return "browser"
}
