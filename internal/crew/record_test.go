package crew

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
)

func TestCrewNames(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		filter  string
		want    []string
	}{
		{
			name:    "names are split and trimmed across records",
			records: []Record{{Names: aws.String("Alice, Bob")}, {Names: aws.String("Carol")}},
			want:    []string{"Alice", "Bob", "Carol"},
		},
		{
			name:    "filter is a case-insensitive substring",
			records: []Record{{Names: aws.String("Alice, Bob")}, {Names: aws.String("Carol")}},
			filter:  "ALI",
			want:    []string{"Alice"},
		},
		{
			name:    "filter with no match yields an empty list",
			records: []Record{{Names: aws.String("Alice, Bob")}},
			filter:  "zzz",
			want:    []string{},
		},
		{
			name:    "record without names contributes nothing",
			records: []Record{{MovieID: 1, CrewRole: "director"}, {Names: aws.String(" Dave ")}},
			want:    []string{"Dave"},
		},
		{
			name:    "scalar name rows are kept as stored",
			records: []Record{{Name: aws.String("Eve")}, {Name: aws.String("Frank")}},
			want:    []string{"Eve", "Frank"},
		},
		{
			name:    "scalar name rows are not filtered",
			records: []Record{{Name: aws.String("Eve")}, {Names: aws.String("Alice, Bob")}},
			filter:  "bob",
			want:    []string{"Eve", "Bob"},
		},
		{
			name:    "names wins over name",
			records: []Record{{Name: aws.String("Old"), Names: aws.String("New, Newer")}},
			want:    []string{"New", "Newer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, crewNames(tt.records, tt.filter))
		})
	}
}
