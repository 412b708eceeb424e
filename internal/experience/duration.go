package experience

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxPlausibleYears caps any computed duration.
const maxPlausibleYears = 50

// Explicit "N years of experience" phrasings. When any of these match, the
// largest value wins and date ranges are not consulted.
var explicitYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*in\s*\w+`),
}

// Date-range shapes, matched case-insensitively over the text plus the
// extracted date entities. Group layout varies per pattern and is resolved by
// group count.
var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(present)\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\s*[-–—]\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\s*[-–—]\s*(present)\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{4})\s*[-–—]\s*(\d{1,2})/(\d{4})\b`),
	regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{4})\s*[-–—]\s*(present)\b`),
}

type yearRange struct {
	start int
	end   int
}

// calculateDuration returns total years of experience. Explicit mentions take
// priority; otherwise overlapping date ranges are merged and summed.
func calculateDuration(text string, dateEntities []string, currentYear int) int {
	lower := strings.ToLower(text)

	var mentioned []int
	for _, pattern := range explicitYearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil || years < 0 || years > maxPlausibleYears {
				continue
			}
			mentioned = append(mentioned, years)
		}
	}
	if len(mentioned) > 0 {
		max := mentioned[0]
		for _, y := range mentioned[1:] {
			if y > max {
				max = y
			}
		}
		return max
	}

	allText := text + " " + strings.Join(dateEntities, " ")
	ranges := collectRanges(allText, currentYear)
	if len(ranges) == 0 {
		return 0
	}

	total := sumMerged(ranges)
	if total > maxPlausibleYears {
		return maxPlausibleYears
	}
	return total
}

func collectRanges(text string, currentYear int) []yearRange {
	var ranges []yearRange

	for _, pattern := range dateRangePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			groups := m[1:]
			var startStr, endStr string
			switch len(groups) {
			case 2:
				startStr, endStr = groups[0], groups[1]
			case 4:
				startStr, endStr = groups[1], groups[3]
			case 3:
				startStr, endStr = groups[1], groups[2]
			default:
				continue
			}

			start, err := strconv.Atoi(startStr)
			if err != nil {
				continue
			}
			end := currentYear
			if !strings.EqualFold(endStr, "present") {
				end, err = strconv.Atoi(endStr)
				if err != nil {
					continue
				}
			}
			if start <= end {
				ranges = append(ranges, yearRange{start: start, end: end})
			}
		}
	}

	return ranges
}

// sumMerged merges overlapping or touching ranges and sums their spans.
func sumMerged(ranges []yearRange) int {
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].start != ranges[j].start {
			return ranges[i].start < ranges[j].start
		}
		return ranges[i].end < ranges[j].end
	})

	var merged []yearRange
	for _, r := range ranges {
		if len(merged) == 0 || r.start > merged[len(merged)-1].end {
			merged = append(merged, r)
		} else if r.end > merged[len(merged)-1].end {
			merged[len(merged)-1].end = r.end
		}
	}

	total := 0
	for _, r := range merged {
		total += r.end - r.start
	}
	return total
}
