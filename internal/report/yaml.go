package report

import (
	"io"

	"github.com/IvanShishkin/burrow/pkg/models"
	"gopkg.in/yaml.v3"
)

// renderYAML writes the result as YAML with the same shape as JSON
func (g *Generator) renderYAML(w io.Writer, result *models.ScanResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(result)); err != nil {
		return err
	}
	return enc.Close()
}
