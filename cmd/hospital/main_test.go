package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/hospital/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func TestList_Medicines(t *testing.T) {
	out, err := execute(t, "", "list", "medicines")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Paracetamol") || !strings.Contains(out, "Ibuprofen") {
		t.Errorf("expected both seeded medicines, got:\n%s", out)
	}
	if !strings.Contains(out, "Price: $5.99") {
		t.Errorf("expected formatted price, got:\n%s", out)
	}
}

func TestList_Paginated(t *testing.T) {
	out, err := execute(t, "", "list", "rooms", "--limit", "1", "--offset", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Type: ICU") {
		t.Errorf("expected second room, got:\n%s", out)
	}
	if strings.Contains(out, "Type: General") || strings.Contains(out, "Type: Private") {
		t.Errorf("expected only one room, got:\n%s", out)
	}
	if !strings.Contains(out, "(1 of 3 shown, prev: --offset 0, next: --offset 2)") {
		t.Errorf("expected both page hints, got:\n%s", out)
	}
}

func TestList_LastPage(t *testing.T) {
	out, err := execute(t, "", "list", "rooms", "--limit", "2", "--offset", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Type: Private") {
		t.Errorf("expected third room, got:\n%s", out)
	}
	if !strings.Contains(out, "(1 of 3 shown, prev: --offset 0)") {
		t.Errorf("expected previous page hint only, got:\n%s", out)
	}
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "", "list", "persons", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data []struct {
			Kind string `json:"kind"`
		} `json:"data"`
		Total   int  `json:"total"`
		HasMore bool `json:"has_more"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if resp.Total != 3 || len(resp.Data) != 3 {
		t.Errorf("total = %d, len = %d, want 3, 3", resp.Total, len(resp.Data))
	}
	if resp.Data[0].Kind != "Patient" {
		t.Errorf("first kind = %q, want Patient", resp.Data[0].Kind)
	}
	if resp.HasMore {
		t.Error("expected has_more to be false")
	}
}

func TestList_NoSeed(t *testing.T) {
	out, err := execute(t, "", "list", "bills", "--no-seed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No billing records.") {
		t.Errorf("expected empty notice, got:\n%s", out)
	}
}

func TestList_UnknownCollection(t *testing.T) {
	if _, err := execute(t, "", "list", "wards"); err == nil {
		t.Error("expected error for unknown collection")
	}
}

func TestList_InvalidConfig(t *testing.T) {
	t.Setenv("PAGE_SIZE", "0")
	if _, err := execute(t, "", "list", "rooms"); err == nil {
		t.Error("expected error for PAGE_SIZE=0")
	}
}

// ---------------------------------------------------------------------------
// console and version
// ---------------------------------------------------------------------------

func TestConsole_Exit(t *testing.T) {
	out, err := execute(t, "0\n", "console")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "City General Hospital") {
		t.Errorf("expected hospital banner, got:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("expected exit message, got:\n%s", out)
	}
}

func TestConsole_DemoLogin(t *testing.T) {
	t.Setenv("DEMO_PASSWORD", "letmein")
	out, err := execute(t, "1\nadmin\nletmein\n0\n0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Logged in as Admin") {
		t.Errorf("expected admin login, got:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hospital dev\n" {
		t.Errorf("version output = %q", out)
	}
}

// ---------------------------------------------------------------------------
// logger
// ---------------------------------------------------------------------------

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Config{Env: "production", LogLevel: "warn"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info event should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), `"message":"shown"`) {
		t.Errorf("expected JSON warn event, got %q", buf.String())
	}
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
}
