package view

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/config"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/logger"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/models"
	"github.com/SatoshiFundAus/dev1003-p2p-crypto-lending-frontend-sub000/internal/session"
)

func TestRenderer(t *testing.T) {
	config := config.DefaultConfig()
	require.NoError(t, logger.Initialize(config.Server.LogLevel))
	defer logger.Sync()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	t.Run("Renders a page inside the layout", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.Render(w, http.StatusOK, "wallet.html", Page{
			Title:    "Wallet",
			Identity: &session.Identity{Email: "user@example.com"},
			BTCPrice: "64250.12",
			Data:     &models.WalletView{HasWallet: true, Balance: decimal.RequireFromString("1.5")},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		body := w.Body.String()
		assert.Contains(t, body, "Wallet")
		// balances always render with 8 fraction digits
		assert.Contains(t, body, "1.50000000")
		assert.Contains(t, body, "64250.12")
	})

	t.Run("Flash banners render from the page state", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.Render(w, http.StatusOK, "login.html", Page{
			Title:  "Log in",
			Notice: "Account created. You can log in now.",
		})

		assert.Contains(t, w.Body.String(), "Account created. You can log in now.")
	})

	t.Run("Unknown template is a clean 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.Render(w, http.StatusOK, "missing.html", Page{})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
