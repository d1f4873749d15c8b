package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boulangerie/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore points a configured store at the given handler instead of the
// real storefront endpoint.
func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := New(Config{Domain: "demo.myshopify.com", AccessToken: "token-123"}, zerolog.Nop())
	s.endpoint = server.URL
	s.client = server.Client()
	return s
}

// graphQLResponder answers every request with the given data payload and
// records the last request body for assertions.
type graphQLResponder struct {
	data        string
	lastRequest graphQLRequest
	lastHeader  http.Header
	calls       int
}

func (g *graphQLResponder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.calls++
	g.lastHeader = r.Header.Clone()
	_ = json.NewDecoder(r.Body).Decode(&g.lastRequest)

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"data": ` + g.data + `}`))
}

const productJSON = `{
  "id": "gid://shopify/Product/42",
  "handle": "baguette-tradition",
  "title": "Baguette tradició",
  "description": "Pa de cada dia",
  "availableForSale": true,
  "featuredImage": {"url": "https://cdn.example.com/baguette.png", "altText": "Baguette", "width": 800, "height": 600},
  "images": {"edges": [{"node": {"url": "https://cdn.example.com/baguette.png"}}]},
  "priceRange": {
    "minVariantPrice": {"amount": "1.2", "currencyCode": "EUR"},
    "maxVariantPrice": {"amount": "1.2", "currencyCode": "EUR"}
  },
  "collections": {"edges": [{"node": {"handle": "breads", "title": "Breads"}}]},
  "metafields": [null, {"key": "is_featured", "value": "true"}]
}`

func TestGetProductByHandle(t *testing.T) {
	responder := &graphQLResponder{data: `{"product": ` + productJSON + `}`}
	s := newTestStore(t, responder)

	p, err := s.GetProductByHandle(context.Background(), "baguette-tradition", model.LocaleCA)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "gid://shopify/Product/42", p.ID)
	assert.Equal(t, "Baguette tradició", p.Title)
	assert.True(t, p.AvailableForSale)
	assert.Equal(t, "1.20", p.PriceMin.StringFixed(2))
	require.NotNil(t, p.FeaturedImage)
	assert.Equal(t, "https://cdn.example.com/baguette.png", p.FeaturedImage.URL)
	// No category metafield, so the first collection handle wins; the
	// is_featured metafield still applies despite the null entry before it.
	assert.Equal(t, "breads", p.Category)
	assert.True(t, p.IsFeatured)

	assert.Equal(t, "token-123", responder.lastHeader.Get(accessTokenHeader))
	assert.Equal(t, "CA", responder.lastRequest.Variables["language"])
}

func TestGetProductByHandle_Unknown(t *testing.T) {
	responder := &graphQLResponder{data: `{"product": null}`}
	s := newTestStore(t, responder)

	p, err := s.GetProductByHandle(context.Background(), "no-such", model.LocaleEN)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProducts(t *testing.T) {
	responder := &graphQLResponder{data: `{"products": {"edges": [{"node": ` + productJSON + `}]}}`}
	s := newTestStore(t, responder)

	products, err := s.GetProducts(context.Background(), 5, model.LocaleEN)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "baguette-tradition", products[0].Handle)
	assert.Equal(t, float64(5), responder.lastRequest.Variables["limit"])
	assert.Equal(t, "EN", responder.lastRequest.Variables["language"])
}

func TestQuery_ErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expectedKind model.ErrorKind
	}{
		{
			name: "GraphQL errors reject",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"errors": [{"message": "invalid query"}]}`))
			},
			expectedKind: model.KindRejected,
		},
		{
			name: "HTTP 500 is transient",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedKind: model.KindTransient,
		},
		{
			name: "Malformed body is transient",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			expectedKind: model.KindTransient,
		},
		{
			name: "Empty data is transient",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			},
			expectedKind: model.KindTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.handler)

			_, err := s.GetProducts(context.Background(), 5, model.LocaleCA)
			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, model.KindOf(err))
		})
	}
}

func TestQuery_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	s := New(Config{Domain: "demo.myshopify.com", AccessToken: "token-123"}, zerolog.Nop())
	s.endpoint = server.URL
	s.client = server.Client()
	server.Close()

	_, err := s.GetProducts(context.Background(), 5, model.LocaleCA)
	require.Error(t, err)
	assert.True(t, model.IsTransient(err))
}

func TestMissingConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "No domain", cfg: Config{AccessToken: "token"}},
		{name: "No access token", cfg: Config{Domain: "demo.myshopify.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.cfg, zerolog.Nop())

			_, err := s.GetProducts(context.Background(), 5, model.LocaleCA)
			require.Error(t, err)
			assert.Equal(t, model.KindConfig, model.KindOf(err))
		})
	}
}

func TestNew_DefaultsAPIVersion(t *testing.T) {
	s := New(Config{Domain: "demo.myshopify.com", AccessToken: "token"}, zerolog.Nop())
	assert.Contains(t, s.endpoint, "/api/"+DefaultAPIVersion+"/graphql.json")

	pinned := New(Config{Domain: "demo.myshopify.com", AccessToken: "token", APIVersion: "2025-01"}, zerolog.Nop())
	assert.Contains(t, pinned.endpoint, "/api/2025-01/graphql.json")
}

func TestSessionOperationsNotImplemented(t *testing.T) {
	s := New(Config{Domain: "demo.myshopify.com", AccessToken: "token"}, zerolog.Nop())
	ctx := context.Background()

	_, err := s.SignInWithEmail(ctx, "demo@example.com", "demo123")
	assert.Equal(t, model.KindNotImplemented, model.KindOf(err))

	_, err = s.GetCurrentUser(ctx, "sess-1")
	assert.Equal(t, model.KindNotImplemented, model.KindOf(err))

	err = s.SignOut(ctx, "sess-1")
	assert.Equal(t, model.KindNotImplemented, model.KindOf(err))
}
