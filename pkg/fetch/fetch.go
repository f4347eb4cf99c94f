// Package fetch retrieves the raw meeting-summaries document.
//
// A source is one of:
//
//   - an http:// or https:// URL, fetched with a single GET (non-2xx is an error)
//   - an s3://bucket/key URI, read with the AWS default credential chain
//   - "-" for standard input
//   - anything else, read as a local file path
//
// Remote sources (HTTP and S3) go through an optional [cache.Cache]. With the
// default null cache every call reads the source.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SingularityNET-Archive/meetgraph/pkg/cache"
	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations"
	"github.com/SingularityNET-Archive/meetgraph/pkg/observability"
)

// DefaultInput is the published dataset analysed when no input is given.
const DefaultInput = "https://raw.githubusercontent.com/SingularityNET-Archive/" +
	"SingularityNET-Archive/refs/heads/main/Data/Snet-Ambassador-Program/" +
	"Meeting-Summaries/2025/meeting-summaries-array.json"

// Stdin is the source name for standard input.
const Stdin = "-"

var (
	// ErrHTTPStatus is returned for a non-2xx HTTP response.
	ErrHTTPStatus = integrations.ErrHTTPStatus

	// ErrNotFound is returned when a file, object or URL does not exist.
	ErrNotFound = errors.New("source not found")

	// ErrInvalidSource is returned for a malformed source such as "s3://bucket".
	ErrInvalidSource = errors.New("invalid source")
)

// Kind classifies a source string.
type Kind int

const (
	KindFile Kind = iota
	KindHTTP
	KindS3
	KindStdin
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindS3:
		return "s3"
	case KindStdin:
		return "stdin"
	}
	return "file"
}

// KindOf reports which kind of source s names.
func KindOf(s string) Kind {
	switch {
	case s == Stdin:
		return KindStdin
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return KindHTTP
	case strings.HasPrefix(s, "s3://"):
		return KindS3
	}
	return KindFile
}

// Result is a fetched document.
type Result struct {
	Source string
	Kind   Kind
	Data   []byte
	Cached bool
}

// Fetcher reads documents from any supported source.
type Fetcher struct {
	http   *integrations.Client
	s3     ObjectGetter
	cache  cache.Cache
	ttl    time.Duration
	stdin  io.Reader
	logger *log.Logger
}

// Option configures a [Fetcher].
type Option func(*Fetcher)

// WithCache stores remote documents in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(f *Fetcher) {
		f.cache = c
		f.ttl = ttl
	}
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *integrations.Client) Option {
	return func(f *Fetcher) { f.http = c }
}

// WithS3 sets the client used for s3:// sources. Without it a client is
// created from the default AWS configuration on first use.
func WithS3(g ObjectGetter) Option {
	return func(f *Fetcher) { f.s3 = g }
}

// WithStdin sets the reader used for the "-" source.
func WithStdin(r io.Reader) Option {
	return func(f *Fetcher) { f.stdin = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New creates a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		http:   integrations.NewClient(map[string]string{"Accept": "application/json"}),
		cache:  cache.NewNullCache(),
		ttl:    cache.DefaultTTL,
		stdin:  os.Stdin,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the raw bytes of source.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*Result, error) {
	kind := KindOf(source)
	res := &Result{Source: source, Kind: kind}

	switch kind {
	case KindStdin:
		data, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		res.Data = data
		return res, nil
	case KindFile:
		data, err := os.ReadFile(source)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, source)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		res.Data = data
		return res, nil
	}

	key := cache.Key(source)
	if data, hit, err := f.cache.Get(ctx, key); err != nil {
		f.logger.Warn("cache read failed", "source", source, "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, kind.String())
		f.logger.Debug("cache hit", "source", source, "bytes", len(data))
		res.Data, res.Cached = data, true
		return res, nil
	}

	observability.Cache().OnCacheMiss(ctx, kind.String())

	var (
		data []byte
		err  error
	)
	if kind == KindHTTP {
		data, err = f.fetchHTTP(ctx, source)
	} else {
		data, err = f.fetchS3(ctx, source)
	}
	if err != nil {
		return nil, err
	}
	if err := f.cache.Set(ctx, key, data, f.ttl); err != nil {
		f.logger.Warn("cache write failed", "source", source, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, kind.String(), len(data))
	}
	res.Data = data
	return res, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	data, err := f.http.GetBytes(ctx, url)
	if errors.Is(err, integrations.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	return data, err
}
