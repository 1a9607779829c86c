package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	u, err := ValidateURL("  https://supplier.example.com/p/charger--24-GREEN4-4875  ")
	require.NoError(t, err)
	assert.Equal(t, "supplier.example.com", u.Host)

	_, err = ValidateURL("http://localhost:8080/item")
	assert.NoError(t, err)

	for _, raw := range []string{"", "   ", "supplier.example.com/p", "mailto:sales@example.com", "https://", "http://[::1"} {
		_, err := ValidateURL(raw)
		assert.Error(t, err, raw)
	}
}
