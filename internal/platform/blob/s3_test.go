package blob

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"memopad/internal/config"
)

func TestEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.BlobConfig
		want bool
	}{
		{"bucket and region set", config.BlobConfig{Bucket: "memopad", Region: "eu-central-1"}, true},
		{"missing bucket", config.BlobConfig{Region: "eu-central-1"}, false},
		{"missing region", config.BlobConfig{Bucket: "memopad"}, false},
		{"nothing configured", config.BlobConfig{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewStore(tt.cfg, nil).Enabled())
		})
	}
}

func TestObjectURL(t *testing.T) {
	t.Parallel()

	t.Run("virtual-hosted S3 URL without an endpoint", func(t *testing.T) {
		t.Parallel()
		s := NewStore(config.BlobConfig{Bucket: "memopad", Region: "eu-central-1"}, nil)
		assert.Equal(t,
			"https://memopad.s3.eu-central-1.amazonaws.com/attachments/x",
			s.objectURL("attachments/x"))
	})

	t.Run("endpoint-based URL for S3-compatible stores", func(t *testing.T) {
		t.Parallel()
		s := NewStore(config.BlobConfig{
			Bucket:   "memopad",
			Region:   "us-east-1",
			Endpoint: "https://minio.internal:9000",
		}, nil)
		assert.Equal(t,
			"https://minio.internal:9000/memopad/attachments/x",
			s.objectURL("attachments/x"))
	})
}

func TestStorageKey(t *testing.T) {
	t.Parallel()

	key := storageKey()
	assert.True(t, strings.HasPrefix(key, "attachments/"))
	// attachments/YYYY/MM/DD/<uuid>
	assert.Len(t, strings.Split(key, "/"), 5)

	assert.NotEqual(t, key, storageKey())
}
