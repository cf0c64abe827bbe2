package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []*EventView {
	return []*EventView{
		{
			ID:        "4a0c8c0e-0000-0000-0000-000000000001",
			ShortID:   "4a0c8c0e",
			Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Ext:       ".pdf",
			Previous:  "Intruder.ProgID",
			Baseline:  "Acrobat.Document.DC",
			Action:    "restored",
		},
		{
			ID:        "4a0c8c0e-0000-0000-0000-000000000002",
			ShortID:   "4a0c8c0e",
			Timestamp: time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC),
			Ext:       ".html",
			Previous:  "Intruder.ProgID",
			Baseline:  "ChromeHTML",
			Action:    "restore_failed",
			Error:     "write failed",
		},
	}
}

func TestTablePresenter_RenderEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderEvents(sampleEvents()))

	out := buf.String()
	assert.Contains(t, out, "Events (2)")
	assert.Contains(t, out, ".pdf")
	assert.Contains(t, out, "Intruder.ProgID -> Acrobat.Document.DC")
	assert.Contains(t, out, "restore failed")
	assert.Contains(t, out, "write failed")
}

func TestTablePresenter_RenderEventsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderEvents(nil))
	assert.Contains(t, buf.String(), "No events found.")
}

func TestTablePresenter_RenderStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderStatus(&StatusView{
		Version: "dev",
		Guard: GuardStatusView{
			Enabled:     true,
			AutoRestore: true,
			Interval:    3 * time.Second,
		},
		Extensions: []ExtensionStatusView{
			{Ext: ".pdf", Baseline: "Acrobat.Document.DC", Current: "Acrobat.Document.DC", State: ExtOK},
			{Ext: ".html", Baseline: "ChromeHTML", Current: "Intruder.ProgID", State: ExtDrift},
		},
		Database: DatabaseView{Location: "/data/events.db", SizeHuman: "12.0 KB", EventCount: 3},
		Config:   ConfigStatusView{Location: "/cfg/config.yaml", RetentionDays: 90},
	}))

	out := buf.String()
	assert.Contains(t, out, "winassocguard dev")
	assert.Contains(t, out, "Monitoring     enabled")
	assert.Contains(t, out, ".pdf")
	assert.Contains(t, out, "drift")
	assert.Contains(t, out, "current: Intruder.ProgID")
	assert.Contains(t, out, "90 days")
}

func TestTablePresenter_RenderBaselines(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderBaselines([]*BaselineView{
		{Ext: ".pdf", Handler: "Acrobat.Document.DC", Label: "Adobe Acrobat"},
	}))

	out := buf.String()
	assert.Contains(t, out, "Guarded extensions (1)")
	assert.Contains(t, out, "Adobe Acrobat (Acrobat.Document.DC)")
}

func TestTablePresenter_RenderCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderCandidates(&CandidatesView{
		Ext:     ".pdf",
		Current: "Acrobat.Document.DC",
		Handlers: []CandidateView{
			{Handler: "Acrobat.Document.DC", Label: "Adobe Acrobat"},
			{Handler: "MSEdgePDF", Label: "Microsoft Edge"},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "Candidate handlers for")
	assert.Contains(t, out, "MSEdgePDF")
	assert.Contains(t, out, "* current handler")
}

func TestTablePresenter_RenderDiff(t *testing.T) {
	var buf bytes.Buffer
	p := NewTablePresenter(PresenterOptions{Writer: &buf, TerminalWidth: 80})

	require.NoError(t, p.RenderDiff(&DiffView{
		Available: true,
		Content:   "--- baseline\n+++ current\n-.pdf Acrobat.Document.DC\n+.pdf Intruder.ProgID\n",
	}))

	out := buf.String()
	assert.Contains(t, out, "-.pdf Acrobat.Document.DC")
	assert.Contains(t, out, "+.pdf Intruder.ProgID")
}

func TestJSONPresenter_RenderEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewJSONPresenter(PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderEvents(sampleEvents()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, ".pdf", decoded[0]["Ext"])
}

func TestJSONLPresenter_RenderEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewJSONLPresenter(PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderEvents(sampleEvents()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	}
}

func TestCSVPresenter_RenderEvents(t *testing.T) {
	var buf bytes.Buffer
	p := NewCSVPresenter(PresenterOptions{Writer: &buf})

	require.NoError(t, p.RenderEvents(sampleEvents()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,timestamp,ext,previous,baseline,action,error", lines[0])
	assert.Contains(t, lines[1], ".pdf")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1,234", FormatNumber(1234))
	assert.Equal(t, "42", FormatNumber(42))
	assert.Equal(t, "4a0c8c0e", FormatShortID("4a0c8c0e-0000-0000-0000-000000000001"))
	assert.Equal(t, "abc", TruncateString("abc", 10))
	assert.Equal(t, "abcd...", TruncateString("abcdefghij", 7))
	assert.Equal(t, "restore failed", FormatAction("restore_failed"))
	assert.Equal(t, "drift detected", FormatAction("none"))
}

type closedPipe struct {
	writes int
}

func (c *closedPipe) Write(p []byte) (int, error) {
	c.writes++
	return 0, errors.New("pipe closed")
}

func TestLineWriter_KeepsFirstError(t *testing.T) {
	pipe := &closedPipe{}
	lw := &lineWriter{out: pipe}

	lw.printf("header %s\n", "row")
	first := lw.err
	require.Error(t, first)

	lw.println("second")
	lw.printf("third %d\n", 3)

	assert.Equal(t, first, lw.err)
	assert.Equal(t, 1, pipe.writes, "writes after a failure should be skipped")
}

func TestTablePresenter_ReportsWriteFailure(t *testing.T) {
	pipe := &closedPipe{}
	p := NewTablePresenter(PresenterOptions{Writer: pipe, TerminalWidth: 80})

	err := p.RenderBaselines([]*BaselineView{
		{Ext: ".pdf", Handler: "Acrobat.Document.DC"},
	})

	require.Error(t, err)
	assert.Equal(t, 1, pipe.writes)
}
