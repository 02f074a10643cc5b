package lifelog

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeImageHashIncludesBlake2Fallback(t *testing.T) {
	value := ComputeImageHash([]byte("hello-image"))
	assert.Contains(t, value, "blake2:")
	// Not an image, so no perceptual hash.
	assert.NotContains(t, value, "dhash:")
}

func TestHammingDistanceSupportsLegacyRawHex(t *testing.T) {
	raw := "0f0f0f0f0f0f0f0f"
	wrapped := "blake2:" + raw
	assert.Equal(t, 0, HammingDistance(raw, wrapped))
}

func TestHammingDistancePrefersSharedPerceptualHash(t *testing.T) {
	left := "dhash:0000000000000000;blake2:ffffffffffffffff"
	right := "dhash:0000000000000001;blake2:0000000000000000"
	assert.Equal(t, 1, HammingDistance(left, right))
}

func TestHammingDistanceReturnsLargeWhenNoSharedAlgorithm(t *testing.T) {
	assert.Equal(t, 64, HammingDistance("dhash:0f", "phash:0f"))
}

func TestIsNearDuplicateHandlesMixedFormats(t *testing.T) {
	current := "dhash:0000000000000000;blake2:aaaaaaaaaaaaaaaa"
	candidates := []string{"aaaaaaaaaaaaaaaa", "blake2:bbbbbbbbbbbbbbbb"}
	assert.True(t, IsNearDuplicate(current, candidates, 0))
}

// gradientPNG renders a horizontal grayscale gradient. Reversed gradients
// produce complementary dhash bits.
func gradientPNG(t *testing.T, reversed bool) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 90, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 90; x++ {
			v := uint8(x * 255 / 89)
			if reversed {
				v = 255 - v
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestComputeImageHashPerceptual(t *testing.T) {
	ascending := ComputeImageHash(gradientPNG(t, false))
	descending := ComputeImageHash(gradientPNG(t, true))

	// Brightness rises left to right, so no pair has left > right.
	assert.Contains(t, ascending, "dhash:0000000000000000")
	assert.Contains(t, descending, "dhash:ffffffffffffffff")

	assert.Equal(t, 0, HammingDistance(ascending, ascending))
	assert.Equal(t, 64, HammingDistance(ascending, descending))
	assert.True(t, IsNearDuplicate(ascending, []string{ascending}, 3))
	assert.False(t, IsNearDuplicate(ascending, []string{descending}, 3))
}
