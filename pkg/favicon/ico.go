package favicon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"io"
)

const maxIconSize = 256

type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width      uint8
	Height     uint8
	ColorCount uint8
	Reserved   uint8
	Planes     uint16
	BitCount   uint16
	Size       uint32
	Offset     uint32
}

// EncodeICO writes images as a single multi-resolution ICO container with
// PNG-compressed entries. Entries must be at most 256 pixels on each side.
// Single-image icons are written with golang-ico instead.
func EncodeICO(w io.Writer, images ...image.Image) error {
	if len(images) == 0 {
		return errors.New("no images")
	}

	var entries []iconDirEntry
	var payloads [][]byte

	offset := 6 + 16*len(images)

	for _, img := range images {
		bounds := img.Bounds()

		if bounds.Dx() > maxIconSize || bounds.Dy() > maxIconSize {
			return errors.New("icon exceeds 256 pixels")
		}

		var buf bytes.Buffer

		if err := png.Encode(&buf, img); err != nil {
			return err
		}

		entries = append(entries, iconDirEntry{
			Width:  uint8(bounds.Dx() % maxIconSize),
			Height: uint8(bounds.Dy() % maxIconSize),

			Planes:   1,
			BitCount: 32,

			Size:   uint32(buf.Len()),
			Offset: uint32(offset),
		})

		payloads = append(payloads, buf.Bytes())
		offset += buf.Len()
	}

	header := iconDir{
		Type:  1,
		Count: uint16(len(images)),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return err
	}

	for _, data := range payloads {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}

	return nil
}
