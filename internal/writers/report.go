package writers

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterReport("text", writeText)
	RegisterReport("json", writeJSON)
	RegisterReport("jsonl", writeJSONL)
	RegisterReport("yaml", writeYAML)
}

// writeText prints one group per line, ids separated by tabs.
func writeText(w io.Writer, groups [][]string) error {
	for _, g := range groups {
		if _, err := io.WriteString(w, strings.Join(g, "\t")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, groups [][]string) error {
	if groups == nil {
		groups = [][]string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}

// writeJSONL prints one JSON array per group.
func writeJSONL(w io.Writer, groups [][]string) error {
	enc := json.NewEncoder(w)
	for _, g := range groups {
		if err := enc.Encode(g); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, groups [][]string) error {
	if groups == nil {
		groups = [][]string{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(groups); err != nil {
		return err
	}
	return enc.Close()
}
