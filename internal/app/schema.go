package app

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
)

// reportSchema describes the document written by the json report format and
// served on /slots.
func reportSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}
	s := r.Reflect(&jsonReport{})
	s.Title = "modslots slot report"
	s.Description = "Slots, named content and hooks registered by one loading session."
	return s
}

func writeReportSchema(w io.Writer) error {
	data, err := json.MarshalIndent(reportSchema(), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
