package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMovieID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "42abc", want: 42},
		{in: "  7 ", want: 7},
		{in: "-3", want: -3},
		{in: "+15", want: 15},
		{in: "007", want: 7},
		{in: "1.5", want: 1},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "x42", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMovieID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidMovieID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
