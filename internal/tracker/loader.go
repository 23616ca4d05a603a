package tracker

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// recordSchema validates the shape of one export record at the boundary,
// so every downstream component can rely on typed Issues. Alternate key
// spellings are tolerated; presence of id and creation fields is enforced
// by the mapper, which knows the fallback chain.
var recordSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"state"},
	Properties: map[string]*jsonschema.Schema{
		"number": {Types: []string{"integer", "string"}},
		"url":    {Type: "string"},
		"title":  {Type: "string"},
		"state":  {Type: "string"},
		"labels": {Type: "array"},
		"events": {Type: "array"},
	},
}

// Load reads the issues export at path and returns the typed collection
// alongside diagnostics for every record or event that had to be excluded.
// A missing or unreadable file is fatal; per-record anomalies are not.
func Load(path string) ([]Issue, Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("reading issues export: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a raw issues export.
func Parse(data []byte) ([]Issue, Diagnostics, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Diagnostics{}, fmt.Errorf("decoding issues export: %w", err)
	}

	resolved, err := recordSchema.Resolve(nil)
	if err != nil {
		return nil, Diagnostics{}, fmt.Errorf("resolving record schema: %w", err)
	}

	diags := Diagnostics{TotalRecords: len(raw)}
	issues := make([]Issue, 0, len(raw))

	for i, rec := range raw {
		var generic any
		if err := json.Unmarshal(rec, &generic); err != nil {
			diags.MalformedRecords++
			log.Warn().Int("record", i).Err(err).Msg("Skipping undecodable record")
			continue
		}
		if err := resolved.Validate(generic); err != nil {
			diags.MalformedRecords++
			log.Warn().Int("record", i).Err(err).Msg("Skipping record failing schema validation")
			continue
		}

		var dto issueDTO
		if err := json.Unmarshal(rec, &dto); err != nil {
			diags.MalformedRecords++
			log.Warn().Int("record", i).Err(err).Msg("Skipping unmappable record")
			continue
		}

		issue, droppedEvents, ok := MapIssue(dto)
		diags.DroppedEvents += droppedEvents
		if !ok {
			diags.MalformedRecords++
			log.Warn().Int("record", i).Msg("Skipping record without usable id or creation time")
			continue
		}
		if issue.IsClosed() && issue.ClosedAt == nil {
			diags.ClosedWithoutTimestamp++
		}
		issues = append(issues, issue)
	}

	log.Debug().
		Int("total", diags.TotalRecords).
		Int("loaded", len(issues)).
		Int("malformed", diags.MalformedRecords).
		Int("droppedEvents", diags.DroppedEvents).
		Msg("Issues export loaded")

	return issues, diags, nil
}
