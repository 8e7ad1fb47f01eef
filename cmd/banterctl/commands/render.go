package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the -o/--output flag.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
	outputTOML = "toml"
)

// renderValue writes v to w in the requested structured format.
// The text format is command-specific and handled by each caller.
func renderValue(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON output")
		}
		fmt.Fprintln(w, string(data))
		return nil
	case outputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshaling YAML output")
		}
		fmt.Fprint(w, string(data))
		return nil
	case outputTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "marshaling TOML output")
		}
		fmt.Fprint(w, string(data))
		return nil
	default:
		return errors.Newf("invalid output format %q: must be text, json, yaml, or toml", format)
	}
}
