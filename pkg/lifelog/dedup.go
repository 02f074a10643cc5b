// Package lifelog implements the image ingest pipeline: near-duplicate
// detection, asset persistence, analyzer invocation, and timeline recording.
package lifelog

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/big"
	"math/bits"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ComputeImageHash returns a multi-hash payload for near-duplicate matching,
// formatted as "dhash:<hex>;blake2:<hex>". The perceptual dhash is included
// when the image decodes; the blake2 digest is always present so exact
// duplicates still match for formats we cannot decode.
func ComputeImageHash(imageBytes []byte) string {
	var hashes []string

	if dhash := computeDHash(imageBytes); dhash != "" {
		hashes = append(hashes, "dhash:"+dhash)
	}

	h, _ := blake2b.New(8, nil)
	_, _ = h.Write(imageBytes)
	hashes = append(hashes, "blake2:"+hex.EncodeToString(h.Sum(nil)))
	return strings.Join(hashes, ";")
}

// HammingDistance compares two hash payloads using the strongest algorithm
// both sides carry (dhash, then phash, then blake2). Payloads with no shared
// algorithm are treated as maximally distant.
//
// Supported input formats:
//  1. Multi-hash: "dhash:<hex>;blake2:<hex>"
//  2. Single prefixed hash: "blake2:<hex>"
//  3. Legacy raw hex: "<hex>" (treated as blake2)
func HammingDistance(hashA, hashB string) int {
	left := parseHashPayload(hashA)
	right := parseHashPayload(hashB)

	for _, algo := range []string{"dhash", "phash", "blake2"} {
		lv, lok := left[algo]
		rv, rok := right[algo]
		if lok && rok {
			return hexHammingDistance(lv, rv)
		}
	}
	return 64
}

// IsNearDuplicate reports whether any candidate hash is within maxDistance
// of the current hash.
func IsNearDuplicate(currentHash string, candidates []string, maxDistance int) bool {
	if maxDistance < 0 {
		maxDistance = 0
	}
	for _, candidate := range candidates {
		if HammingDistance(currentHash, candidate) <= maxDistance {
			return true
		}
	}
	return false
}

func parseHashPayload(value string) map[string]string {
	text := strings.ToLower(strings.TrimSpace(value))
	if text == "" {
		return nil
	}

	output := make(map[string]string)
	for _, seg := range strings.Split(text, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if name, payload, ok := strings.Cut(seg, ":"); ok {
			name = strings.TrimSpace(name)
			payload = strings.TrimSpace(payload)
			if name != "" && isHex(payload) {
				output[name] = payload
			}
			continue
		}
		if isHex(seg) {
			// Legacy storage format (no prefix): treat as blake2.
			output["blake2"] = seg
		}
	}
	return output
}

func hexHammingDistance(left, right string) int {
	lv, lok := new(big.Int).SetString(left, 16)
	rv, rok := new(big.Int).SetString(right, 16)
	if !lok || !rok {
		return 64
	}
	xor := new(big.Int).Xor(lv, rv)
	distance := 0
	for _, word := range xor.Bits() {
		distance += bits.OnesCount(uint(word))
	}
	return distance
}

func isHex(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f') {
			return false
		}
	}
	return true
}

// computeDHash renders the image to a 9x8 grayscale grid and emits one bit
// per horizontally adjacent pair (left brighter than right). Returns "" when
// the bytes do not decode as an image.
func computeDHash(imageBytes []byte) string {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return ""
	}

	const cols, rows = 9, 8
	pixels := grayGrid(img, cols, rows)

	var value uint64
	for y := 0; y < rows; y++ {
		row := y * cols
		for x := 0; x < cols-1; x++ {
			value <<= 1
			if pixels[row+x] > pixels[row+x+1] {
				value |= 1
			}
		}
	}
	return fmt.Sprintf("%016x", value)
}

// grayGrid downsamples the image into cols x rows cells by averaging the
// grayscale value of each cell's source pixels.
func grayGrid(img image.Image, cols, rows int) []float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	out := make([]float64, cols*rows)
	if width == 0 || height == 0 {
		return out
	}

	for cy := 0; cy < rows; cy++ {
		y0 := bounds.Min.Y + cy*height/rows
		y1 := bounds.Min.Y + (cy+1)*height/rows
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for cx := 0; cx < cols; cx++ {
			x0 := bounds.Min.X + cx*width/cols
			x1 := bounds.Min.X + (cx+1)*width/cols
			if x1 <= x0 {
				x1 = x0 + 1
			}
			var sum, count float64
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
					sum += float64(g.Y)
					count++
				}
			}
			out[cy*cols+cx] = sum / count
		}
	}
	return out
}
