// Package output serializes reconciliation results to JSON and XLSX.
package output

import (
	"encoding/json"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon"
	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// ToJSON serializes processing results to JSON.
func ToJSON(results []*ticketrecon.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(results, "", "  ")
	}
	return json.Marshal(results)
}

// ResultToJSON serializes a single result to JSON.
func ResultToJSON(result *ticketrecon.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// SuggestionToJSON serializes a game suggestion to JSON.
func SuggestionToJSON(sug models.Suggestion, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sug, "", "  ")
	}
	return json.Marshal(sug)
}
