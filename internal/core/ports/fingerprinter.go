package ports

// Fingerprinter computes content fingerprints of files. The prober uses it
// to tell a rebuild that rewrote identical bytes from a real content change.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a hash of the file's content.
	Fingerprint(path string) (uint64, error)
}
