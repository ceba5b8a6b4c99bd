package hwpv5

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	signatureText  = "HWP Document File"
	fileHeaderSize = 256
)

// Version is the four-part HWP version number (MM.nn.PP.rr).
type Version struct {
	Major byte
	Minor byte
	Patch byte
	Rev   byte
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Rev)
}

// FileProperties holds the property bits of the FileHeader stream.
type FileProperties uint32

func (p FileProperties) Compressed() bool   { return p&0x1 != 0 }
func (p FileProperties) Encrypted() bool    { return p&0x2 != 0 }
func (p FileProperties) Distribution() bool { return p&0x4 != 0 }

// FileHeader is the fixed 256-byte FileHeader stream.
type FileHeader struct {
	Signature      string
	Version        Version
	Properties     FileProperties
	EncryptVersion uint32
}

func readFileHeader(r io.Reader) (FileHeader, error) {
	var hdr FileHeader
	var buf [fileHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return hdr, fmt.Errorf("read file header: %w", err)
	}

	hdr.Signature = string(bytes.TrimRight(buf[:32], "\x00"))
	if hdr.Signature != signatureText {
		return hdr, fmt.Errorf("unexpected signature %q", hdr.Signature)
	}

	ver := binary.LittleEndian.Uint32(buf[32:36])
	hdr.Version = Version{
		Major: byte(ver >> 24),
		Minor: byte(ver >> 16),
		Patch: byte(ver >> 8),
		Rev:   byte(ver),
	}
	hdr.Properties = FileProperties(binary.LittleEndian.Uint32(buf[36:40]))
	hdr.EncryptVersion = binary.LittleEndian.Uint32(buf[44:48])
	return hdr, nil
}
