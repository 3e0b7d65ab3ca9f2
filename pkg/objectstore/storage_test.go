package objectstore

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/skillforge/skillforge-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient("key", "secret", "bucket", "", "")
	assert.Error(t, err)
}

func TestValidateImageType(t *testing.T) {
	c := &Client{}

	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "IMAGE/PNG"} {
		assert.NoError(t, c.ValidateImageType(contentType), contentType)
	}

	for _, contentType := range []string{"image/gif", "text/html", "application/pdf", ""} {
		assert.Error(t, c.ValidateImageType(contentType), contentType)
	}
}

func TestValidateImageSize(t *testing.T) {
	c := &Client{}

	small := base64.StdEncoding.EncodeToString([]byte("tiny image"))
	assert.NoError(t, c.ValidateImageSize(small))

	big := base64.StdEncoding.EncodeToString(make([]byte, 6*1024*1024))
	assert.Error(t, c.ValidateImageSize(big))

	assert.Error(t, c.ValidateImageSize("%%% not base64 %%%"))
}

func TestAvatarKey(t *testing.T) {
	c := &Client{}

	key := c.AvatarKey("user-1", "image/png")
	assert.True(t, strings.HasPrefix(key, "avatars/user-1-"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	key = c.AvatarKey("user-1", "image/jpeg")
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	key = c.AvatarKey("user-1", "image/webp")
	assert.True(t, strings.HasSuffix(key, ".webp"))
}

func TestDecodeImageData(t *testing.T) {
	payload := []byte("hello")
	encoded := base64.StdEncoding.EncodeToString(payload)

	decoded, err := decodeImageData(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	decoded, err = decodeImageData("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	_, err = decodeImageData("data:image/png;base64")
	assert.Error(t, err)
}
