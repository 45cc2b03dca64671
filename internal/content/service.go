package content

import (
	"context"
	"fmt"
)

// Service fetches typed content for one page context.
type Service struct {
	getter  Getter
	preview bool
	query   PageQuery
}

// NewService binds a getter to the preview intent and page query of the
// current page.
func NewService(getter Getter, preview bool, query PageQuery) *Service {
	return &Service{getter: getter, preview: preview, query: query}
}

// Preview reports whether the service was asked for draft content.
func (s *Service) Preview() bool {
	return s.preview
}

// FetchHomepage retrieves the homepage configuration.
func (s *Service) FetchHomepage(ctx context.Context) (*HomepageConfig, error) {
	var payload HomepageConfig
	if err := s.fetch(ctx, Homepage, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchProduct retrieves the product configuration.
func (s *Service) FetchProduct(ctx context.Context) (*ProductConfig, error) {
	var payload ProductConfig
	if err := s.fetch(ctx, Product, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (s *Service) fetch(ctx context.Context, src Source, dest any) error {
	if s == nil {
		return fmt.Errorf("service is nil")
	}
	res, err := src.Fetch(ctx, s.getter, s.preview, s.query)
	if err != nil {
		return err
	}
	if err := res.Decode(dest); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	return nil
}
