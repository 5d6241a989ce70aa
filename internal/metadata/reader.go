package metadata

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"pregoogle/internal/charset"
)

// ErrMetadataLoad reports exiftool output that is empty or not an XML document.
var ErrMetadataLoad = errors.New("metadata load failure")

// Reader exposes typed access to one exiftool XML document.
type Reader struct {
	doc    *xmlquery.Node
	legacy string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLegacyCharset sets the charset used to decode base64 binary values.
func WithLegacyCharset(label string) Option {
	return func(r *Reader) {
		if strings.TrimSpace(label) != "" {
			r.legacy = label
		}
	}
}

// Parse builds a Reader from exiftool -X output.
func Parse(raw string, opts ...Option) (*Reader, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: exiftool produced no output", ErrMetadataLoad)
	}
	doc, err := xmlquery.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parse xml: %w", ErrMetadataLoad, err)
	}
	if firstElement(doc) == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMetadataLoad)
	}
	r := &Reader{doc: doc, legacy: charset.DefaultLegacy}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Scalar returns the value of the first element matching tag, or "" when the
// tag is absent.
func (r *Reader) Scalar(tag Tag) string {
	return r.value(r.find(tag))
}

// Bag returns the items of the first element matching tag in document order.
// A tag holding plain text instead of a bag yields that text as one item.
func (r *Reader) Bag(tag Tag) []string {
	node := r.find(tag)
	if node == nil {
		return []string{}
	}
	container := firstElement(node)
	if container == nil {
		if text := r.value(node); strings.TrimSpace(text) != "" {
			return []string{text}
		}
		return []string{}
	}
	values := []string{}
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		values = append(values, r.value(child))
	}
	return values
}

func (r *Reader) find(tag Tag) *xmlquery.Node {
	if r == nil || r.doc == nil {
		return nil
	}
	node, err := xmlquery.Query(r.doc, tag.xpath())
	if err != nil {
		return nil
	}
	return node
}

// value extracts the node text, decoding base64 binary payloads and
// repairing mis-encoded letters.
func (r *Reader) value(node *xmlquery.Node) string {
	if node == nil {
		return ""
	}
	text := node.InnerText()
	if isBase64(node) {
		if decoded, err := r.decodeBinary(text); err == nil {
			text = decoded
		}
	}
	if strings.TrimSpace(text) != "" {
		text = charset.Repair(text)
	}
	return text
}

func (r *Reader) decodeBinary(text string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	return charset.Decode(data, r.legacy)
}

func isBase64(node *xmlquery.Node) bool {
	for _, attr := range node.Attr {
		if attr.Value == base64Datatype {
			return true
		}
	}
	return false
}

func firstElement(node *xmlquery.Node) *xmlquery.Node {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}
