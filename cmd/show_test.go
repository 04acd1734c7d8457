package cmd

import (
	"testing"

	"github.com/quiltmoor/passgit/internal/store"
)

func TestRenderEntry(t *testing.T) {
	entry := store.Entry{
		Password: "hunter2",
		Metadata: []string{"url: example.com", "user: alice"},
	}

	tests := []struct {
		name         string
		passwordOnly bool
		want         string
	}{
		{
			name:         "full record",
			passwordOnly: false,
			want:         "hunter2\nurl: example.com\nuser: alice\n",
		},
		{
			name:         "password only",
			passwordOnly: true,
			want:         "hunter2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderEntry(entry, tt.passwordOnly); got != tt.want {
				t.Errorf("renderEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}
