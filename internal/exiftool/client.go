package exiftool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pregoogle/internal/charset"
)

var (
	// ErrExternalTool reports that exiftool could not be run to completion.
	ErrExternalTool = errors.New("exiftool invocation failed")
	// ErrUnexpectedOutput reports write output that matched no known outcome.
	ErrUnexpectedOutput = errors.New("unexpected exiftool output")
	// ErrEmptyTitle rejects a write with nothing to write.
	ErrEmptyTitle = errors.New("title empty")
)

// DefaultWriteCharset is the charset titles are encoded in on the command line.
const DefaultWriteCharset = "cp1252"

// WriteResult carries the classified outcome and the raw output it came from.
type WriteResult struct {
	Outcome Outcome
	Output  string
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithClassifier replaces the default output classifier.
func WithClassifier(classifier Classifier) Option {
	return func(c *Client) {
		if classifier != nil {
			c.classifier = classifier
		}
	}
}

// WithTimeout bounds each invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithWriteCharset sets the charset used to encode the title argument. Any
// alias is accepted; -charset receives exiftool's name for it.
func WithWriteCharset(label string) Option {
	return func(c *Client) {
		if label = strings.TrimSpace(label); label != "" {
			c.writeCharset = label
		}
	}
}

// Client wraps exiftool CLI interactions.
type Client struct {
	binary       string
	writeCharset string
	exifCharset  string
	timeout      time.Duration
	exec         Executor
	classifier   Classifier
}

// New constructs an exiftool client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("exiftool binary required")
	}
	client := &Client{
		binary:       binary,
		writeCharset: DefaultWriteCharset,
		exec:         commandExecutor{},
		classifier:   DefaultClassifier(),
	}
	for _, opt := range opts {
		opt(client)
	}
	name, err := charset.ExifToolName(client.writeCharset)
	if err != nil {
		return nil, fmt.Errorf("exiftool write charset: %w", err)
	}
	client.exifCharset = name
	return client, nil
}

// Binary returns the configured exiftool command.
func (c *Client) Binary() string {
	return c.binary
}

// Extract returns exiftool's XML dump of path.
func (c *Client) Extract(ctx context.Context, path string) (string, error) {
	output, err := c.run(ctx, ExtractArgs(path))
	if err != nil {
		return output, fmt.Errorf("%w: extract %s: %w", ErrExternalTool, path, err)
	}
	return output, nil
}

// WriteTitle stores title in the XMP:Description of path. With simulate set
// nothing is executed and the outcome is Simulate. An Unexpected outcome is
// returned together with ErrUnexpectedOutput and the raw output.
func (c *Client) WriteTitle(ctx context.Context, path, title string, simulate bool) (WriteResult, error) {
	title = charset.Repair(title)
	if strings.TrimSpace(title) == "" {
		return WriteResult{}, ErrEmptyTitle
	}
	if simulate {
		return WriteResult{Outcome: Simulate}, nil
	}

	encoded, err := charset.Encode(title, c.writeCharset)
	if err != nil {
		return WriteResult{}, fmt.Errorf("encode title: %w", err)
	}

	output, runErr := c.run(ctx, WriteArgs(path, encoded, c.exifCharset))
	result := WriteResult{Outcome: c.classifier.Classify(output), Output: output}
	if runErr != nil {
		result.Outcome = Unexpected
		return result, fmt.Errorf("%w: %w: write %s: %w", ErrUnexpectedOutput, ErrExternalTool, path, runErr)
	}
	if result.Outcome == Unexpected {
		return result, fmt.Errorf("%w: write %s", ErrUnexpectedOutput, path)
	}
	return result, nil
}

func (c *Client) run(ctx context.Context, args []string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.exec.Run(ctx, c.binary, args)
}
