// Package formfile reads application forms prepared as JSON files,
// for `recruitify apply -f app.json`.
package formfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/idilsaglam/recruitify/internal/model"
)

func Load(path string) (model.ApplicationForm, error) {
	var form model.ApplicationForm
	b, err := os.ReadFile(path)
	if err != nil {
		return form, fmt.Errorf("read form file: %w", err)
	}
	if err := json.Unmarshal(b, &form); err != nil {
		return form, fmt.Errorf("parse form file %s: %w", path, err)
	}
	return form, nil
}

// Write saves a form back out, handy for keeping a reusable template.
func Write(path string, form model.ApplicationForm) error {
	b, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
