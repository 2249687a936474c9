package domain

import "fmt"

// PageManifest is the per-chapter payload needed to build page URLs.
// It is fetched fresh for every download and never cached.
type PageManifest struct {
	BaseURL   string
	Hash      string
	Data      []string
	DataSaver []string
}

// Files returns the page filename list for the requested quality.
func (m PageManifest) Files(dataSaver bool) []string {
	if dataSaver {
		return m.DataSaver
	}

	return m.Data
}

// PageURL builds the download URL for a single page file.
func (m PageManifest) PageURL(dataSaver bool, file string) string {
	quality := "data"
	if dataSaver {
		quality = "data-saver"
	}

	return fmt.Sprintf("%s/%s/%s/%s", m.BaseURL, quality, m.Hash, file)
}
