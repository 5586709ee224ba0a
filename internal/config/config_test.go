package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-kasir/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":             "",
		"PORT":                "",
		"CURRENCY_CODE":       "",
		"REVENUE_FILE_PATH":   "",
		"CATALOG_STOCK_LEVEL": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "SEK", cfg.CurrencyCode)
	require.Equal(t, "total-revenue.log", cfg.RevenueFilePath)
	require.Equal(t, 50, cfg.CatalogStockLevel)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PORT":                 "9000",
		"CORS_ALLOWED_ORIGINS": "http://a.example, http://b.example",
		"CATALOG_STOCK_LEVEL":  "25",
		"RECEIPT_FOOTER":       "Tack!",
	})
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTPAddr())
	require.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 25, cfg.CatalogStockLevel)
	require.Equal(t, "Tack!", cfg.ReceiptFooter)
}

func TestBadStockLevelFallsBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{"CATALOG_STOCK_LEVEL": "lots"})
	require.NoError(t, err)
	require.Equal(t, 50, cfg.CatalogStockLevel)
}
