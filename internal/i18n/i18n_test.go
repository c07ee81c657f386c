// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "Mahsulot topilmadi", T("uz", KeyProductNotFound))
	assert.Equal(t, "Товар не найден", T("ru", KeyProductNotFound))

	// Unknown languages fall back to English.
	assert.Equal(t, "Product not found", T("de", KeyProductNotFound))

	// Unknown keys fall back to the key itself.
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestTranslationFormatting(t *testing.T) {
	require.NoError(t, Initialize("locales"))

	assert.Equal(t, "5 rows updated", T("en", KeyBulkCompleted, 5))
}
