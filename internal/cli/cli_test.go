package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/pagesim/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options.Program
		wantErr bool
	}{
		{
			name: "no arguments",
			args: []string{"prog"},
			want: options.Program{},
		},
		{
			name: "script file",
			args: []string{"prog", "session.txt"},
			want: options.Program{Script: "session.txt"},
		},
		{
			name: "debug flag",
			args: []string{"prog", "-debug"},
			want: options.Program{Debug: true},
		},
		{
			name: "quiet script run",
			args: []string{"prog", "-q", "session.txt"},
			want: options.Program{Quiet: true, Script: "session.txt"},
		},
		{
			name: "gui flag",
			args: []string{"prog", "-gui"},
			want: options.Program{GUI: true},
		},
		{
			name:    "gui with script file",
			args:    []string{"prog", "-gui", "session.txt"},
			wantErr: true,
		},
		{
			name:    "two script files",
			args:    []string{"prog", "one.txt", "two.txt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			if tt.wantErr {
				var usageErr *UsageError
				assert.True(t, errors.As(err, &usageErr))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
