package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"testing"
)

func TestLogAppendsEntries(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	Log(Entry{Operation: "add", Store: "/tmp/store", Name: "mail/work"})
	Log(Entry{Operation: "rename", Store: "/tmp/store", OldName: "mail/work", NewName: "mail/personal"})

	f, err := os.Open(LogPath())
	if err != nil {
		t.Fatalf("opening audit log: %v", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("invalid audit line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Operation != "add" || entries[0].Name != "mail/work" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].OldName != "mail/work" || entries[1].NewName != "mail/personal" {
		t.Errorf("second entry = %+v", entries[1])
	}
	for _, e := range entries {
		if e.ID == "" || e.Timestamp == "" {
			t.Errorf("entry missing id or timestamp: %+v", e)
		}
	}
}
