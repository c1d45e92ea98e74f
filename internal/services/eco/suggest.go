package eco

import "strconv"

const (
	resizeSuggestion = "Consider buffer/gate resize on critical arc"
	noAction         = "No action"
)

// Annotate appends a Recommendation column to rows from sta-extract output.
// A row whose WNS parses negative gets a resize suggestion; rows with a
// missing or non-negative WNS get "No action". Rows shorter than the header
// pass through padded so the output stays rectangular.
func Annotate(header []string, rows [][]string) ([]string, [][]string) {
	wnsCol := -1
	for i, name := range header {
		if name == "WNS" {
			wnsCol = i
			break
		}
	}

	outHeader := append(append([]string{}, header...), "Recommendation")
	outRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		padded := append(append([]string{}, row...), make([]string, max(0, len(header)-len(row)))...)
		suggestion := noAction
		if wnsCol >= 0 && wnsCol < len(padded) {
			if wns, err := strconv.ParseFloat(padded[wnsCol], 64); err == nil && wns < 0 {
				suggestion = resizeSuggestion
			}
		}
		outRows = append(outRows, append(padded, suggestion))
	}
	return outHeader, outRows
}
