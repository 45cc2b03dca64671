package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/five82/showcase/internal/cms"
)

// Getter is the slice of *cms.Client the content layer needs.
type Getter interface {
	Get(ctx context.Context, path string, opts cms.RequestOptions) (*cms.Result, error)
}

// Ensure Client implements Getter at compile time.
var _ Getter = (*cms.Client)(nil)

// Source describes one CMS content type with a published and a draft endpoint.
type Source struct {
	Name        string
	DisplayPath string
	PreviewPath string
	// Marker is the value of the page "type" query parameter that unlocks preview.
	Marker string
}

// Content sources served by the CMS.
var (
	Homepage = Source{
		Name:        "homepage",
		DisplayPath: "/crm-website/homepageConfig/display",
		PreviewPath: "/crm-website/homepageConfig/preview",
		Marker:      "mainPage",
	}
	Product = Source{
		Name:        "product",
		DisplayPath: "/crm-website/productConfig/display",
		PreviewPath: "/crm-website/productConfig/preview",
		Marker:      "product",
	}
)

// Path picks the endpoint. Preview is only used when the caller asks for it
// and the page query names this source.
func (s Source) Path(isPreview bool, query PageQuery) string {
	if isPreview && query.HasType(s.Marker) {
		return s.PreviewPath
	}
	return s.DisplayPath
}

// Fetch calls the endpoint chosen by Path.
func (s Source) Fetch(ctx context.Context, getter Getter, isPreview bool, query PageQuery) (*cms.Result, error) {
	if getter == nil {
		return nil, fmt.Errorf("%s: getter is nil", s.Name)
	}
	return getter.Get(ctx, s.Path(isPreview, query), cms.RequestOptions{})
}

// PageQuery is the query string of the page the content is rendered for.
type PageQuery struct {
	values url.Values
}

// ParsePageQuery parses a raw query such as "?type=mainPage". Malformed pairs
// are dropped.
func ParsePageQuery(raw string) PageQuery {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	values, _ := url.ParseQuery(raw)
	return PageQuery{values: values}
}

// HasType reports whether the query carries type=<marker>. A type value may
// list several markers separated by commas.
func (q PageQuery) HasType(marker string) bool {
	if marker == "" {
		return false
	}
	for _, v := range q.values["type"] {
		for _, m := range strings.Split(v, ",") {
			if strings.TrimSpace(m) == marker {
				return true
			}
		}
	}
	return false
}

// String re-encodes the query.
func (q PageQuery) String() string {
	return q.values.Encode()
}
