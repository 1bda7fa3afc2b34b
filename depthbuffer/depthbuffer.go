// Package depthbuffer stores the raw per-pixel hit distances of a render.
//
// File layout: an 8-byte little-endian header length, a serialized
// google.protobuf.Struct header, then a zlib stream holding the distances as
// little-endian float32 in row-major order.
package depthbuffer

import (
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"depthtrace/framebuffer"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const dataLayoutVersion = 1

// maxPixels bounds the depth plane allocated for a header read from disk.
const maxPixels = 1 << 28

// Header describes the distances that follow it.  MinDistance and MaxDistance
// record the window the color image was shaded with.
type Header struct {
	Width, Height            int
	MinDistance, MaxDistance float64
}

func (h *Header) toProto() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"width":          float64(h.Width),
		"height":         float64(h.Height),
		"min_distance":   h.MinDistance,
		"max_distance":   h.MaxDistance,
		"layout_version": float64(dataLayoutVersion),
	})
}

func headerFromProto(s *structpb.Struct) (*Header, error) {
	fields := s.GetFields()

	if v := fields["layout_version"].GetNumberValue(); v != dataLayoutVersion {
		return nil, fmt.Errorf("bad data layout version: %v", v)
	}

	h := &Header{
		Width:       int(fields["width"].GetNumberValue()),
		Height:      int(fields["height"].GetNumberValue()),
		MinDistance: fields["min_distance"].GetNumberValue(),
		MaxDistance: fields["max_distance"].GetNumberValue(),
	}
	if h.Width <= 0 || h.Height <= 0 {
		return nil, fmt.Errorf("bad dimensions %dx%d", h.Width, h.Height)
	}
	if h.Width > maxPixels || h.Height > maxPixels || h.Width > maxPixels/h.Height {
		return nil, fmt.Errorf("dimensions %dx%d exceed %d pixels", h.Width, h.Height, maxPixels)
	}
	return h, nil
}

func Write(w io.Writer, hdr *Header, im *framebuffer.Image) error {
	if !im.HasDepth() {
		return fmt.Errorf("image has no depth plane")
	}
	if hdr.Width != im.Width || hdr.Height != im.Height {
		return fmt.Errorf("header says %dx%d but image is %dx%d", hdr.Width, hdr.Height, im.Width, im.Height)
	}

	protoHdr, err := hdr.toProto()
	if err != nil {
		return fmt.Errorf("while building header: %w", err)
	}

	hdrBytes, err := proto.Marshal(protoHdr)
	if err != nil {
		return fmt.Errorf("while marshaling header: %w", err)
	}

	headerLengthBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(headerLengthBytes, uint64(len(hdrBytes)))
	if _, err := w.Write(headerLengthBytes); err != nil {
		return fmt.Errorf("while writing header length: %w", err)
	}

	if _, err := w.Write(hdrBytes); err != nil {
		return fmt.Errorf("while writing header: %w", err)
	}

	zipWriter := zlib.NewWriter(w)

	if err := binary.Write(zipWriter, binary.LittleEndian, im.Depths); err != nil {
		return fmt.Errorf("while writing depths: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("while closing zip writer: %w", err)
	}

	return nil
}

// maxHeaderLength bounds the allocation made for a corrupt header length.
const maxHeaderLength = 1 << 20

func Read(in io.Reader) (*Header, *framebuffer.Image, error) {
	var headerLength uint64
	if err := binary.Read(in, binary.LittleEndian, &headerLength); err != nil {
		return nil, nil, fmt.Errorf("while reading header length: %w", err)
	}
	if headerLength > maxHeaderLength {
		return nil, nil, fmt.Errorf("header length %d is too large", headerLength)
	}

	headerBytes := make([]byte, int(headerLength))
	if _, err := io.ReadFull(in, headerBytes); err != nil {
		return nil, nil, fmt.Errorf("while reading header bytes: %w", err)
	}

	protoHdr := &structpb.Struct{}
	if err := proto.Unmarshal(headerBytes, protoHdr); err != nil {
		return nil, nil, fmt.Errorf("while unmarshaling header: %w", err)
	}

	hdr, err := headerFromProto(protoHdr)
	if err != nil {
		return nil, nil, err
	}

	im := framebuffer.New(hdr.Width, hdr.Height, true)

	zipReader, err := zlib.NewReader(in)
	if err != nil {
		return nil, nil, fmt.Errorf("while opening zip reader: %w", err)
	}
	defer zipReader.Close()

	if err := binary.Read(zipReader, binary.LittleEndian, im.Depths); err != nil {
		return nil, nil, fmt.Errorf("while reading depths: %w", err)
	}

	return hdr, im, nil
}

func ReadFile(name string) (*Header, *framebuffer.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("while opening file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
