package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"stakit/internal/store"
)

func TestWriteJSON_CreatesParentsAndRoundTrips(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "deeper", "report.json")

	in := map[string]any{"wns": -0.12, "hold_issues": true}
	if err := store.WriteJSON(out, in); err != nil {
		t.Fatalf("write json: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["wns"] != -0.12 || got["hold_issues"] != true {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestWriteJSON_LeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	if err := store.WriteJSON(filepath.Join(dir, "out.json"), []int{1, 2}); err != nil {
		t.Fatalf("write json: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestWriteCSV_ReadCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")

	header := []string{"WNS", "Start"}
	rows := [][]string{{"-0.12", "u_core/reg_a"}, {"", ""}}
	if err := store.WriteCSV(path, header, rows); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	gotHeader, gotRows, err := store.ReadCSV(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(gotHeader) != 2 || gotHeader[0] != "WNS" {
		t.Fatalf("header mismatch: %v", gotHeader)
	}
	if len(gotRows) != 2 || gotRows[0][1] != "u_core/reg_a" {
		t.Fatalf("rows mismatch: %v", gotRows)
	}
}

func TestReadText_MissingFileFails(t *testing.T) {
	if _, err := store.ReadText(filepath.Join(t.TempDir(), "absent.log")); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestReadText_DropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirty.log")
	if err := os.WriteFile(path, []byte("WNS:\xff\xfe -0.1"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	text, err := store.ReadText(path)
	if err != nil {
		t.Fatalf("read text: %v", err)
	}
	if text != "WNS: -0.1" {
		t.Fatalf("invalid bytes not dropped: %q", text)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "top.sdc")
	if err := store.WriteText(path, "create_clock -name clk\n"); err != nil {
		t.Fatalf("write text: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "create_clock -name clk\n" {
		t.Fatalf("content mismatch: %q", b)
	}
}
