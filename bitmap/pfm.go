package bitmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// The worker emits its raw framebuffer as binary PFM (portable float map):
// a "PF" magic line, a dimensions line, a scale line whose sign selects the
// byte order, then rows of little- or big-endian float32 triples stored
// bottom row first.

var errPFMHeader = errors.New("bitmap: malformed pfm header")

// DecodePFM reads a color PFM stream.
func DecodePFM(r io.Reader) (*Float, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "PF" {
		return nil, fmt.Errorf("%w: magic %q", errPFMHeader, magic)
	}

	width, err := readInt(br)
	if err != nil {
		return nil, err
	}
	height, err := readInt(br)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", errPFMHeader, width, height)
	}

	scaleTok, err := readToken(br)
	if err != nil {
		return nil, err
	}
	scale, err := strconv.ParseFloat(scaleTok, 64)
	if err != nil || scale == 0 {
		return nil, fmt.Errorf("%w: scale %q", errPFMHeader, scaleTok)
	}
	order := binary.ByteOrder(binary.BigEndian)
	if scale < 0 {
		order = binary.LittleEndian
	}

	f := NewFloat(width, height)
	row := make([]byte, width*3*4)
	for y := height - 1; y >= 0; y-- { // bottom row first
		if _, err = io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("bitmap: truncated pfm data: %v", err)
		}
		base := y * width * 3
		for i := 0; i < width*3; i++ {
			f.Pix[base+i] = math.Float32frombits(order.Uint32(row[i*4:]))
		}
	}
	return f, nil
}

// ReadPFM decodes a PFM file from disk.
func ReadPFM(path string) (*Float, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %v", err)
	}
	defer fh.Close()
	return DecodePFM(fh)
}

// EncodePFM writes f as a little-endian color PFM stream.
func EncodePFM(w io.Writer, f *Float) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "PF\n%d %d\n-1.0\n", f.Width, f.Height); err != nil {
		return err
	}
	row := make([]byte, f.Width*3*4)
	for y := f.Height - 1; y >= 0; y-- {
		base := y * f.Width * 3
		for i := 0; i < f.Width*3; i++ {
			binary.LittleEndian.PutUint32(row[i*4:], math.Float32bits(f.Pix[base+i]))
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readToken consumes whitespace-delimited header fields.
func readToken(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: %v", errPFMHeader, err)
		}
		if c == ' ' || c == '\n' || c == '\r' || c == '\t' {
			if sb.Len() == 0 {
				continue
			}
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}

func readInt(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errPFMHeader, tok)
	}
	return v, nil
}
