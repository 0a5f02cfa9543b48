package ocr

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, 4, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestEnhanceNoOptionsIsPassThrough(t *testing.T) {
	e := NewImagingEnhancer(nil)
	in := []byte("whatever")
	assert.Equal(t, in, e.Enhance(in, EnhanceOptions{}))
}

func TestEnhanceUndecodableBytesReturnsOriginal(t *testing.T) {
	e := NewImagingEnhancer(nil)
	in := []byte("definitely not an image")
	out := e.Enhance(in, EnhanceOptions{Denoise: true, Contrast: true})
	assert.Equal(t, in, out)
}

func TestEnhanceProducesDecodableImage(t *testing.T) {
	e := NewImagingEnhancer(nil)
	in := pngBytes(t)
	out := e.Enhance(in, EnhanceOptions{Denoise: true, Sharpen: true, Contrast: true, RemoveBackground: true})

	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 8, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs", "a\t\tb   c", "a b c"},
		{"blank line collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "a   \nb\t\n", "a\nb"},
		{"already clean", "Date: 05/15/2023\nTime In: 08:30", "Date: 05/15/2023\nTime In: 08:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestIsHEIC(t *testing.T) {
	heic := append([]byte{0, 0, 0, 0x18}, []byte("ftypheic")...)
	heic = append(heic, make([]byte, 16)...)
	assert.True(t, IsHEIC(heic))

	png := []byte("\x89PNG\r\n\x1a\n0000000000")
	assert.False(t, IsHEIC(png))
	assert.False(t, IsHEIC([]byte("short")))
}

func TestBoxNoiseStripped(t *testing.T) {
	in := "Name: X\n________\nDate: Y\n--- --\nkeep -- this"
	out := reBoxNoise.ReplaceAllString(in, "")
	assert.NotContains(t, out, "________")
	assert.Contains(t, out, "keep -- this")
}
