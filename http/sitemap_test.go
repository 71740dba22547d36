package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/pagelens/pagelens"
	pagelenshttp "github.com/pagelens/pagelens/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSitemapServer serves the given path->body map, substituting {{BASE}}
// in bodies with the server's own URL.
func newSitemapServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	return srv
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("from robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/sitemap.xml\n",
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/products</loc></url>
  <url><loc>{{BASE}}/checkout</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, urls, srv.URL+"/products")
		assert.Contains(t, urls, srv.URL+"/checkout")
	})

	t.Run("falls back to sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/landing</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/landing"}, urls)
	})

	t.Run("expands sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-pages.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-blog.xml</loc></sitemap>
</sitemapindex>`,
			"/sitemap-pages.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/pricing</loc></url>
</urlset>`,
			"/sitemap-blog.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/blog/launch</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, urls, srv.URL+"/pricing")
		assert.Contains(t, urls, srv.URL+"/blog/launch")
	})

	t.Run("applies include and exclude filters", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/shop/cart</loc></url>
  <url><loc>{{BASE}}/shop/archive/old</loc></url>
  <url><loc>{{BASE}}/about</loc></url>
</urlset>`,
		})
		defer srv.Close()

		filter := &pagelens.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/shop/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/archive/`)},
		}

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/shop/cart"}, urls)
	})

	t.Run("restricts to the base URL path prefix", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/shop/cart</loc></url>
  <url><loc>{{BASE}}/shopping/list</loc></url>
  <url><loc>{{BASE}}/about</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/shop", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/shop/cart"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{})
		defer srv.Close()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := newSitemapServer(t, map[string]string{})
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := pagelenshttp.NewSitemapService(srv.Client())
		_, err := svc.DiscoverURLs(ctx, srv.URL, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
