package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// blankPage is a small white image used to exercise the codec and the engine.
func blankPage() image.Image {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// probeCodec round-trips the blank page through the PNG encoder and decoder.
func probeCodec() error {
	data, err := encodePNG(blankPage())
	if err != nil {
		return err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode png: %w", err)
	}
	if img.Bounds().Dx() != 32 {
		return fmt.Errorf("decode png: unexpected width %d", img.Bounds().Dx())
	}
	return nil
}
