package filestore_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/zeebo/assert"

	"github.com/sandoapp/finance_service/filestore"
)

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	key := filestore.ObjectKey(id, "receipt.png")
	assert.Equal(t, "11111111-2222-3333-4444-555555555555/receipt.png", key)
}

func TestKeyFromLocation(t *testing.T) {
	key := filestore.KeyFromLocation(
		"https://bucket.s3.eu-west-1.amazonaws.com/11111111-2222-3333-4444-555555555555/receipt.png")
	assert.Equal(t, "11111111-2222-3333-4444-555555555555/receipt.png", key)

	// round trip with ObjectKey
	id := uuid.New()
	location := "https://bucket.s3.local/" + filestore.ObjectKey(id, "a.pdf")
	assert.Equal(t, filestore.ObjectKey(id, "a.pdf"), filestore.KeyFromLocation(location))
}
