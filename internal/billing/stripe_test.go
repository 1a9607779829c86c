package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSKUSearchQuery(t *testing.T) {
	assert.Equal(t, `metadata['sku']:'24-GREEN4-4875'`, skuSearchQuery("24-GREEN4-4875"))
	assert.Equal(t, `metadata['sku']:'O\'BRIEN-1'`, skuSearchQuery("O'BRIEN-1"))
}

func TestNewStripeCatalogRequiresKey(t *testing.T) {
	_, err := NewStripeCatalog("", nil)
	assert.Error(t, err)

	c, err := NewStripeCatalog("sk_test_123", nil)
	assert.NoError(t, err)
	assert.NotNil(t, c)
}
