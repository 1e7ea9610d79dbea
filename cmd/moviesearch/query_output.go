package main

import (
	"strconv"
	"strings"

	"github.com/wook89/movie-search/internal/catalog"
)

const missingValue = "-"

func renderRecords(records []catalog.Record, ranked bool) string {
	if len(records) == 0 {
		return "No results"
	}
	headers := []string{"ID", "Type", "Title", "Date", "Rating"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}
	if ranked {
		headers = append([]string{"#"}, headers...)
		aligns = append([]columnAlignment{alignRight}, aligns...)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			formatID(record.ID),
			record.MediaType,
			stringOr(record.Title),
			stringOr(record.ReleaseDate),
			formatRating(record.VoteAverage),
		}
		if ranked {
			row = append([]string{strconv.Itoa(record.Rank)}, row...)
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func renderSuggestions(suggestions []catalog.Suggestion) string {
	if len(suggestions) == 0 {
		return "No suggestions"
	}
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{formatID(s.ID), s.MediaType, stringOr(s.Title), stringOr(s.ReleaseDate)})
	}
	return renderTable(
		[]string{"ID", "Type", "Title", "Date"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

func renderDetail(d *catalog.Detail) string {
	rows := [][]string{
		{"ID", formatID(d.ID)},
		{"Type", d.MediaType},
		{"Title", stringOr(d.Title)},
		{"Date", stringOr(d.ReleaseDate)},
		{"Rating", formatRating(d.VoteAverage)},
		{"Genres", joinNames(d.Genres)},
		{"Keywords", joinNames(d.Keywords)},
		{"Trailer", stringOr(d.TrailerURL)},
		{"Poster", stringOr(d.PosterURL)},
		{"Backdrop", stringOr(d.BackdropURL)},
		{"Overview", stringOr(d.Overview)},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func formatID(id *int64) string {
	if id == nil {
		return missingValue
	}
	return strconv.FormatInt(*id, 10)
}

func formatRating(value *float64) string {
	if value == nil {
		return missingValue
	}
	return strconv.FormatFloat(*value, 'f', 1, 64)
}

func stringOr(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return missingValue
	}
	return *value
}

func joinNames(values []*string) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		if v != nil && *v != "" {
			names = append(names, *v)
		}
	}
	if len(names) == 0 {
		return missingValue
	}
	return strings.Join(names, ", ")
}
