package hwpx

import "github.com/hanpama/hwpx/internal/owpml"

// Write builds a new HWPX package containing text, one paragraph per
// line. The result loads back with Load and extracts to the same lines,
// minus any characters XML 1.0 forbids (C0 controls other than tab, LF
// and CR, U+FFFE and U+FFFF), which are dropped.
func Write(text string, opts WriteOptions) ([]byte, error) {
	return owpml.Write(text, opts)
}
