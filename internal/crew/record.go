package crew

import "strings"

// Record is one stored crew row. Older rows carry a single Name, newer ones
// a comma-separated Names list; a row may carry neither.
type Record struct {
	MovieID  int64   `dynamodbav:"movieId"`
	CrewRole string  `dynamodbav:"crewRole"`
	Name     *string `dynamodbav:"name,omitempty"`
	Names    *string `dynamodbav:"names,omitempty"`
}

// members returns the crew names held by the record. filter is a lowercased
// substring applied to Names entries only; Name rows pass through as stored.
func (r Record) members(filter string) []string {
	switch {
	case r.Names != nil:
		var out []string
		for _, piece := range strings.Split(*r.Names, ",") {
			name := strings.TrimSpace(piece)
			if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
				continue
			}
			out = append(out, name)
		}
		return out
	case r.Name != nil:
		return []string{*r.Name}
	default:
		return nil
	}
}

// crewNames flattens the records into one list, keeping store order.
func crewNames(records []Record, filter string) []string {
	filter = strings.ToLower(filter)

	names := make([]string, 0)
	for _, r := range records {
		names = append(names, r.members(filter)...)
	}
	return names
}
