package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvColumns maps header names to field setters. Header matching is
// case-insensitive; unknown columns are ignored so exports from other
// tools import without editing.
var csvColumns = map[string]func(*CreateItemInput, string){
	"media":       func(in *CreateItemInput, v string) { in.Media = v },
	"title":       func(in *CreateItemInput, v string) { in.Title = v },
	"creator":     func(in *CreateItemInput, v string) { in.Creator = v },
	"genres":      func(in *CreateItemInput, v string) { in.Genres = splitGenres(v) },
	"format":      func(in *CreateItemInput, v string) { in.Format = v },
	"releasedate": func(in *CreateItemInput, v string) { in.ReleaseDate = v },
	"identifier":  func(in *CreateItemInput, v string) { in.Identifier = v },
	"kind":        func(in *CreateItemInput, v string) { in.IdentifierKind = v },
	"rating":      func(in *CreateItemInput, v string) { in.Rating = v },
	"description": func(in *CreateItemInput, v string) { in.Description = v },
	"imageurl":    func(in *CreateItemInput, v string) { in.ImageURL = v },
	"notes":       func(in *CreateItemInput, v string) { in.Notes = v },
}

// ImportCSV bulk-creates items from a CSV stream. The first row must be a
// header naming at least the media and title columns. Rows that fail
// validation are skipped and reported in the summary rather than aborting
// the rest of the import.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	setters := make([]func(*CreateItemInput, string), len(header))
	hasMedia, hasTitle := false, false
	for i, name := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
		setters[i] = csvColumns[key]
		switch key {
		case "media":
			hasMedia = true
		case "title":
			hasTitle = true
		}
	}
	if !hasMedia || !hasTitle {
		return nil, fmt.Errorf("CSV header must include media and title columns")
	}

	summary := &ImportSummary{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		input := &CreateItemInput{}
		for i, value := range record {
			if i < len(setters) && setters[i] != nil {
				setters[i](input, strings.TrimSpace(value))
			}
		}

		if _, err := s.Create(ctx, input); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		summary.Imported++
	}

	s.logger.Info().
		Int("imported", summary.Imported).
		Int("skipped", summary.Skipped).
		Msg("CSV import completed")

	return summary, nil
}

func splitGenres(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ";")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
