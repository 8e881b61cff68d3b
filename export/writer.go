package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFile serializes doc as indented JSON and writes it to path via a
// uniquely named temporary file in the same directory, renamed into place so
// readers never observe a half-written document. Failures are recoverable
// I/O errors.
func WriteFile(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding maze document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating document directory: %w", err)
		}
	}

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing maze document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("placing maze document: %w", err)
	}
	return nil
}
