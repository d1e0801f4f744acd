package parser

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ticketrecon/ticketrecon-go/pkg/ticketrecon/models"
)

// SuggestGame matches the short game code embedded in a report file
// name against the weekday-keyed code table. The resolved code is
// returned even on a weekday mismatch so the caller can decide.
func SuggestGame(fileName string, businessDate time.Time, table models.DayCodeTable) models.Suggestion {
	weekday := businessDate.Weekday().String()
	sug := models.Suggestion{Status: models.SuggestNotFound, Weekday: weekday}

	code := detectCode(fileName, codeUniverse(table))
	if code == "" {
		return sug
	}
	sug.Code = code

	days := weekdaysForCode(table, code)
	if len(days) == 0 {
		return sug
	}
	sug.CodeWeekdays = days

	if def, ok := table[weekday][code]; ok {
		sug.Status = models.SuggestOK
		sug.Game = &def
		return sug
	}
	if len(days) > 1 {
		sug.Status = models.SuggestAmbiguous
		return sug
	}
	def := table[days[0]][code]
	sug.Status = models.SuggestMismatchDay
	sug.Game = &def
	return sug
}

// BuildDayCodeTable indexes the game master list by weekday and short
// code. Entries without a short code are skipped.
func BuildDayCodeTable(games []models.GameDef) models.DayCodeTable {
	table := make(models.DayCodeTable)
	for _, g := range games {
		code := strings.ToUpper(strings.TrimSpace(g.ShortCode))
		day := strings.TrimSpace(g.Weekday)
		if code == "" || day == "" {
			continue
		}
		if table[day] == nil {
			table[day] = make(map[string]models.GameDef)
		}
		table[day][code] = g
	}
	return table
}

// detectCode locates a known short code inside the file name. Codes
// are tried longest first so a specific 3-letter code beats a 2-letter
// code that could be its substring; when plain containment finds
// nothing, a delimiter-bounded token scan is the fallback.
func detectCode(fileName string, codes []string) string {
	name := strings.ToUpper(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	for _, code := range codes {
		if strings.Contains(name, code) {
			return code
		}
	}
	for _, code := range codes {
		re := regexp.MustCompile(`(^|[^A-Z])` + regexp.QuoteMeta(code) + `([^A-Z]|$)`)
		if re.MatchString(name) {
			return code
		}
	}
	return ""
}

// codeUniverse collects every short code in the table, longest first,
// ties broken alphabetically for determinism.
func codeUniverse(table models.DayCodeTable) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, byCode := range table {
		for code := range byCode {
			if _, ok := seen[code]; !ok {
				seen[code] = struct{}{}
				codes = append(codes, code)
			}
		}
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}

// weekdaysForCode lists the weekdays a code is configured under, in
// calendar order.
func weekdaysForCode(table models.DayCodeTable, code string) []string {
	var days []string
	for day := time.Sunday; day <= time.Saturday; day++ {
		if _, ok := table[day.String()][code]; ok {
			days = append(days, day.String())
		}
	}
	return days
}
