package domain

import (
	"fmt"
	"strings"
)

// SourceName identifies a regulation website that can be searched.
type SourceName string

// Known regulation sources.
const (
	// SourceMevzuat is the national legislation information system.
	SourceMevzuat SourceName = "mevzuat.gov.tr"

	// SourceResmiGazete is the Official Gazette.
	SourceResmiGazete SourceName = "resmigazete.gov.tr"

	// SourceGIB is the Revenue Administration regulation portal. Placeholder.
	SourceGIB SourceName = "gib"

	// SourceMevbank is the Mevbank regulation database. Placeholder.
	SourceMevbank SourceName = "mevbank"
)

// IsValid returns true if the source is recognised.
func (s SourceName) IsValid() bool {
	switch s {
	case SourceMevzuat, SourceResmiGazete, SourceGIB, SourceMevbank:
		return true
	default:
		return false
	}
}

// IsPlaceholder returns true for sources that are known but have no
// scraping support. Searching them is legal and always yields nothing.
func (s SourceName) IsPlaceholder() bool {
	return s == SourceGIB || s == SourceMevbank
}

// String returns the string representation.
func (s SourceName) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s SourceName) Description() string {
	switch s {
	case SourceMevzuat:
		return "Mevzuat Bilgi Sistemi"
	case SourceResmiGazete:
		return "Resmî Gazete"
	case SourceGIB:
		return "GİB Mevzuat"
	case SourceMevbank:
		return "Mevbank"
	default:
		return unknownDescription
	}
}

// AllSources returns every known source in canonical order.
func AllSources() []SourceName {
	return []SourceName{
		SourceMevzuat,
		SourceResmiGazete,
		SourceGIB,
		SourceMevbank,
	}
}

// ParseSourceName resolves a canonical source name or a short alias
// such as "mevzuat" or "resmigazete". Matching is case-insensitive.
func ParseSourceName(name string) (SourceName, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mevzuat", "mevzuat.gov.tr":
		return SourceMevzuat, nil
	case "resmigazete", "resmi-gazete", "resmigazete.gov.tr":
		return SourceResmiGazete, nil
	case "gib":
		return SourceGIB, nil
	case "mevbank":
		return SourceMevbank, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}

// ParseSourceNames resolves a list of names, failing on the first unknown one.
func ParseSourceNames(names []string) ([]SourceName, error) {
	sources := make([]SourceName, 0, len(names))
	for _, name := range names {
		source, err := ParseSourceName(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// RegulationRecord is a single result scraped from a regulation website.
// Records are values; once built they are never modified.
type RegulationRecord struct {
	// Title is the regulation title.
	Title string `json:"title"`

	// Link is the absolute URL of the regulation page.
	Link string `json:"link"`

	// Content is the summary shown in the result listing. May be empty.
	Content string `json:"content"`

	// Date is the publication date as displayed by the site. May be empty.
	Date string `json:"date"`

	// Source is the site the record was scraped from.
	Source SourceName `json:"source"`
}
