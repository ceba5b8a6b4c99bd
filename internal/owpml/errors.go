package owpml

import "errors"

var (
	// ErrNotLoaded is returned by operations that need a loaded package.
	ErrNotLoaded = errors.New("hwpx: no document loaded")

	// ErrEncryptedDocument is returned when META-INF/manifest.xml declares encryption.
	ErrEncryptedDocument = errors.New("hwpx: document is encrypted")
)
