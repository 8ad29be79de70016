package render

import (
	"regexp"
	"strconv"

	"birdfeed/internal/domain"
)

// protocolRe strips the scheme prefix for protocol-relative embedding.
var protocolRe = regexp.MustCompile(`(?i)^https?:`)

// StripProtocol returns the URL without its http/https scheme prefix.
func StripProtocol(u string) string {
	return protocolRe.ReplaceAllString(u, "")
}

// ExtractURLs maps link entities to normalized records. Pure field access, no
// offset arithmetic.
func ExtractURLs(ents []domain.URLEntity) []domain.URLRecord {
	records := make([]domain.URLRecord, 0, len(ents))
	for _, u := range ents {
		records = append(records, domain.URLRecord{
			URL:         u.URL,
			ExpandedURL: u.ExpandedURL,
			DisplayURL:  u.DisplayURL,
		})
	}
	return records
}

// ExtractMedia maps media entities to normalized records.
func ExtractMedia(ents []domain.MediaEntity) []domain.MediaRecord {
	records := make([]domain.MediaRecord, 0, len(ents))
	for _, m := range ents {
		id := m.IDStr
		if id == "" {
			id = strconv.FormatInt(m.ID, 10)
		}
		records = append(records, domain.MediaRecord{
			ID:                 id,
			MediaURL:           m.MediaURL,
			MediaURLNoProtocol: StripProtocol(m.MediaURL),
			MediaURLHTTPS:      m.MediaURLHTTPS,
			URL:                m.URL,
			DisplayURL:         m.DisplayURL,
			ExpandedURL:        m.ExpandedURL,
			Type:               m.Type,
			Sizes:              extractSizes(m.Sizes),
		})
	}
	return records
}

func extractSizes(s domain.MediaSizes) domain.SizeRecords {
	return domain.SizeRecords{
		Small:  extractSize(s.Small),
		Medium: extractSize(s.Medium),
		Large:  extractSize(s.Large),
		Thumb:  extractSize(s.Thumb),
	}
}

func extractSize(s domain.MediaSize) domain.SizeRecord {
	return domain.SizeRecord{Width: s.W, Height: s.H, Resize: s.Resize}
}
