package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradehub/tradehub-server/internal/service"
	"github.com/tradehub/tradehub-server/internal/testutil"
	"github.com/tradehub/tradehub-server/internal/token"
)

func TestRouter_Register(t *testing.T) {
	log := testutil.MakeNoopLogger()

	r := New(
		service.NewInvoice(nil, nil, log),
		service.NewUser(nil, nil, log),
		service.NewAuth(nil, nil, log),
		token.NewJWT("test-secret"),
		nil,
		nil,
		log,
	)

	engine := r.Register()
	require.NotNil(t, engine)

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		http.MethodGet + " /healthz",
		http.MethodPost + " /login",
		http.MethodGet + " /adduser",
		http.MethodPost + " /adduser",
		http.MethodGet + " /dashboard/invoices",
		http.MethodPost + " /dashboard/invoices",
		http.MethodPost + " /dashboard/invoices/:id",
		http.MethodDelete + " /dashboard/invoices/:id",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(expected))
}
