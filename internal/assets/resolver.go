package assets

import (
	"fmt"
	"net/url"
	"strings"
)

// Resolver turns stored asset references into absolute public URLs.
type Resolver struct {
	base *url.URL
}

// NewResolver validates the public base URL once at startup so that
// per-request resolution can never fail.
func NewResolver(baseURL string) (*Resolver, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid public base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("public base URL must be absolute: %q", baseURL)
	}
	return &Resolver{base: u}, nil
}

// Resolve returns nil for an empty reference, the reference itself when it
// already carries a scheme, and the reference joined onto the public base
// URL otherwise.
func (r *Resolver) Resolve(ref string) *string {
	if ref == "" {
		return nil
	}
	if strings.Contains(ref, "://") {
		return &ref
	}
	abs := r.base.JoinPath(ref).String()
	return &abs
}
