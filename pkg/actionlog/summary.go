package actionlog

import (
	"bufio"
	"io"
	"time"
)

// Summary aggregates an action log for reporting.
type Summary struct {
	Total   int            `json:"total"`
	Skipped int            `json:"skipped"`
	ByAgent map[string]int `json:"by_agent"`
	ByTool  map[string]int `json:"by_tool"`
	First   time.Time      `json:"first,omitzero"`
	Last    time.Time      `json:"last,omitzero"`
}

// Summarize reads a log stream and aggregates its entries. Malformed and
// comment lines are counted as skipped, never treated as errors; the log
// is a shared file and consumers must tolerate foreign content.
func Summarize(r io.Reader) (Summary, error) {
	sum := Summary{
		ByAgent: map[string]int{},
		ByTool:  map[string]int{},
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		entry, ok := ParseLine(line)
		if !ok {
			if len(line) > 0 {
				sum.Skipped++
			}
			continue
		}
		sum.Total++
		sum.ByAgent[entry.AgentID]++
		sum.ByTool[entry.Tool]++
		if sum.First.IsZero() || entry.Timestamp.Before(sum.First) {
			sum.First = entry.Timestamp
		}
		if entry.Timestamp.After(sum.Last) {
			sum.Last = entry.Timestamp
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, err
	}
	return sum, nil
}
