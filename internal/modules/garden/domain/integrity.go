package domain

// ReadReport describes where a read came from and what had to be fixed.
type ReadReport struct {
	Source    string
	Recovered bool
	Problems  []string
	Repairs   []string
}

const (
	SourcePrimary = "primary"
	SourceDefault = "default"
)

// Duplicates counts sessions sharing a (date, start_time) pair with an earlier one.
func Duplicates(g Garden) int {
	seen := map[string]struct{}{}
	dupes := 0
	for _, s := range g.Sessions {
		key := s.Date + "|" + s.StartTime.Format(TimeLayout)
		if _, ok := seen[key]; ok {
			dupes++
			continue
		}
		seen[key] = struct{}{}
	}
	return dupes
}
