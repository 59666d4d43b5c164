package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// render écrit v en JSON indenté ou en YAML. Le YAML passe par JSON pour
// reprendre les noms de champs de l'API.
func render(w io.Writer, format string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		raw = append(raw, '\n')
		_, err = w.Write(raw)
		return err
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
