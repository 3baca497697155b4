// Package output serializes export manifests.
package output

import (
	"encoding/json"

	"github.com/ukaji3/attendsplit/pkg/attendsplit/models"
)

// ToJSON serializes a manifest to JSON.
func ToJSON(m *models.Manifest, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}
