package dataset

import (
	"context"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-insights/internal/domain/schema"
	"github.com/riskibarqy/player-insights/internal/platform/logging"
	"github.com/riskibarqy/player-insights/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

const defaultFetchTimeout = 20 * time.Second

var errRemoteStatus = crerr.New("unexpected dataset response status")

type RemoteConfig struct {
	URL            string
	Timeout        time.Duration
	MaxBytes       int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	// Client overrides the fasthttp client, mainly for tests.
	Client *fasthttp.Client
}

// RemoteSource downloads a CSV dataset over HTTP(S).
type RemoteSource struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewRemoteSource(cfg RemoteConfig) *RemoteSource {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	client := cfg.Client
	if client == nil {
		client = &fasthttp.Client{
			Name:                "player-insights",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: cfg.MaxBytes,
		}
	}

	return &RemoteSource{
		url:     strings.TrimSpace(cfg.URL),
		timeout: timeout,
		client:  client,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		logger:  logger,
	}
}

func (s *RemoteSource) String() string {
	return s.url
}

func (s *RemoteSource) Fetch(ctx context.Context) (schema.RawTable, error) {
	var body []byte
	err := s.breaker.Execute(func() error {
		var fetchErr error
		body, fetchErr = s.download(ctx)
		return fetchErr
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			s.logger.WarnContext(ctx, "dataset fetch rejected by circuit breaker", "url", s.url, "state", s.breaker.State())
		}
		return schema.RawTable{}, err
	}
	return ParseCSV(s.url, body)
}

func (s *RemoteSource) download(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "text/csv, text/plain;q=0.9, */*;q=0.1")

	start := time.Now()
	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, crerr.Wrapf(err, "download dataset %s", s.url)
	}
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return nil, crerr.Wrapf(errRemoteStatus, "download dataset %s: status=%d", s.url, status)
	}

	body := append([]byte(nil), resp.Body()...)
	s.logger.InfoContext(ctx, "dataset downloaded",
		"url", s.url,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return body, nil
}
