package transfer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ExportJSON serializes a session to the pretty-printed envelope format.
func ExportJSON(s Session, now time.Time) ([]byte, error) {
	envelope := BuildEnvelope(s, now)
	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export envelope: %w", err)
	}
	return out, nil
}

// ExportFileName derives the download file name for an export.
func ExportFileName(s Session, ext string) string {
	name := strings.TrimSpace(s.FileName)
	if name == "" {
		name = "resume"
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
