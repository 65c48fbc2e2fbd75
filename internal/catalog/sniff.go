package catalog

import (
	"encoding/csv"
	"strings"
)

// delimiterCandidates are tried in this order; the order also breaks ties.
var delimiterCandidates = []rune{';', ',', '\t', '|'}

// sampleSize is how much of the file DetectDelimiter looks at.
const sampleSize = 4096

// DetectDelimiter picks the field delimiter for a CSV sample (the first
// sampleSize bytes of the file). It first looks for a candidate that parses
// the whole sample into a consistent number of columns, preferring the one
// yielding the most. When no candidate qualifies it falls back to whichever
// splits the first line into the most columns (at least two), defaulting to
// ';'. The result is deterministic for a given sample.
func DetectDelimiter(sample string, truncated bool) rune {
	if d, ok := sniffDelimiter(sample, truncated); ok {
		return d
	}
	return fallbackDelimiter(sample)
}

// sniffDelimiter accepts a candidate only when every sample record has the
// same column count and that count is at least two. A truncated sample loses
// its final line, which may have been cut mid-record.
func sniffDelimiter(sample string, truncated bool) (rune, bool) {
	if truncated {
		if i := strings.LastIndexByte(sample, '\n'); i >= 0 {
			sample = sample[:i]
		} else {
			sample = ""
		}
	}
	if sample == "" {
		return 0, false
	}

	best := rune(0)
	bestCols := 0
	for _, cand := range delimiterCandidates {
		r := csv.NewReader(strings.NewReader(sample))
		r.Comma = cand
		r.LazyQuotes = true
		records, err := r.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		consistent := cols >= 2
		for _, rec := range records[1:] {
			if len(rec) != cols {
				consistent = false
				break
			}
		}
		if consistent && cols > bestCols {
			best = cand
			bestCols = cols
		}
	}
	return best, best != 0
}

// fallbackDelimiter scores candidates by how many columns they produce on the
// first line alone.
func fallbackDelimiter(sample string) rune {
	firstLine := sample
	if i := strings.IndexByte(sample, '\n'); i >= 0 {
		firstLine = sample[:i]
	}

	best := ';'
	bestCols := 1
	for _, cand := range delimiterCandidates {
		cols := strings.Count(firstLine, string(cand)) + 1
		if cols > bestCols {
			best = cand
			bestCols = cols
		}
	}
	return best
}
