package hwpv5

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func fileHeaderBytes(sig string, ver, props uint32) []byte {
	buf := make([]byte, fileHeaderSize)
	copy(buf, sig)
	binary.LittleEndian.PutUint32(buf[32:], ver)
	binary.LittleEndian.PutUint32(buf[36:], props)
	return buf
}

func TestReadFileHeader(t *testing.T) {
	hdr, err := readFileHeader(bytes.NewReader(fileHeaderBytes(signatureText, 0x05000300, 0x1|0x4)))
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Version.String() != "5.0.3.0" {
		t.Errorf("version = %s", hdr.Version)
	}
	if !hdr.Properties.Compressed() || hdr.Properties.Encrypted() || !hdr.Properties.Distribution() {
		t.Errorf("properties = %b", hdr.Properties)
	}
}

func TestReadFileHeaderErrors(t *testing.T) {
	if _, err := readFileHeader(bytes.NewReader(fileHeaderBytes("Not HWP", 0, 0))); err == nil {
		t.Error("expected signature error")
	}
	if _, err := readFileHeader(bytes.NewReader([]byte(signatureText))); err == nil {
		t.Error("expected short read error")
	}
}

func TestIsCompoundFile(t *testing.T) {
	if !IsCompoundFile(append(append([]byte{}, compoundMagic...), 0, 0)) {
		t.Error("magic not recognized")
	}
	if IsCompoundFile([]byte("PK\x03\x04")) {
		t.Error("zip reported as compound file")
	}
}

func TestProbeRejectsNonCompound(t *testing.T) {
	if _, err := Probe(bytes.NewReader([]byte("PK\x03\x04 not a compound file at all"))); err == nil {
		t.Error("expected error")
	}
}
