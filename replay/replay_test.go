package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pirots2ascii/types"
)

const testReplay = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <game id="42">
    <pubdata><![CDATA[<PURCHASES><PURCHASE>
<RESULT><ACTIONS><ORDERED>
  <ACTION name="spin" window="0,0,a;0,1,b|1,0,c;1,1,d" mask="0200000000000000"/>
  <ACTION name="move">
    <STEP prev-pos="2,3" path="4,4" pos="6,1" sym="a" win="10" first-step="true"/>
    <STEP pos="5,6"/>
  </ACTION>
  <ACTION name="noop"/>
  <ACTION window="0,0,e"/>
</ORDERED></ACTIONS></RESULT>
<RESULT><ACTIONS><ORDERED>
  <ACTION name="bonus" window="0,0,M">
    <STEP path="1,1;2,2" last-step="true" angry-birds="red"/>
  </ACTION>
</ORDERED></ACTIONS></RESULT>
</PURCHASE></PURCHASES>]]></pubdata>
  </game>
</response>`

func writeTempReplay(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp replay: %v", err)
	}
	return path
}

func parseTestReplay(t *testing.T) []types.GameState {
	t.Helper()
	doc, err := Parse(strings.NewReader(testReplay))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	states, err := Walk(doc)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return states
}

func TestWalkTitlesAndOrder(t *testing.T) {
	states := parseTestReplay(t)

	want := []struct {
		kind  string
		title string
	}{
		{"window", "1. Result 0 - Action: spin (Mask: 0200000000000000, 1 positions)"},
		{"path", "2. Result 0 - Action: move - Step 1 Path"},
		{"path", "3. Result 0 - Action: move - Step 2 Path"},
		{"window", "4. Result 0 - Action: Unknown"},
		{"window", "5. Result 1 - Action: bonus"},
		{"path", "6. Result 1 - Action: bonus - Step 1 Path"},
	}
	if len(states) != len(want) {
		t.Fatalf("len(states) = %d, want %d", len(states), len(want))
	}
	for i, w := range want {
		if states[i].Kind() != w.kind {
			t.Errorf("states[%d].Kind() = %q, want %q", i, states[i].Kind(), w.kind)
		}
		if states[i].Heading() != w.title {
			t.Errorf("states[%d].Heading() = %q, want %q", i, states[i].Heading(), w.title)
		}
	}
}

func TestWalkSequenceIsShared(t *testing.T) {
	states := parseTestReplay(t)
	for i, s := range states {
		if s.Seq() != i+1 {
			t.Errorf("states[%d].Seq() = %d, want %d", i, s.Seq(), i+1)
		}
	}
}

func TestWalkBoardState(t *testing.T) {
	states := parseTestReplay(t)
	board, ok := states[0].(*types.BoardState)
	if !ok {
		t.Fatalf("states[0] is %T, want *types.BoardState", states[0])
	}
	if board.Board.Rows() != 2 || board.Board.Cols() != 2 {
		t.Errorf("board size = %dx%d, want 2x2", board.Board.Rows(), board.Board.Cols())
	}
	if !board.Highlights.Has(types.Position{Row: 7, Col: 1}) {
		t.Errorf("highlights = %v, want (7,1)", board.Highlights.Positions())
	}
	if board.Raw != "0,0,a;0,1,b|1,0,c;1,1,d" {
		t.Errorf("Raw = %q", board.Raw)
	}

	unnamed := states[3].(*types.BoardState)
	if unnamed.ActionName != "" {
		t.Errorf("ActionName = %q, want empty", unnamed.ActionName)
	}
	if unnamed.Highlights.Len() != 0 || unnamed.Mask != "" {
		t.Errorf("unmasked board has highlights %v", unnamed.Highlights.Positions())
	}
	if unnamed.Board[0][0] != "E" {
		t.Errorf("symbol = %q, want E", unnamed.Board[0][0])
	}
}

func TestWalkPathState(t *testing.T) {
	states := parseTestReplay(t)
	path := states[1].(*types.PathState)

	if len(path.Points) != 3 {
		t.Fatalf("points = %v, want 3", path.Points)
	}
	if path.Step.Symbol != "a" || path.Step.Win != "10" || path.Step.FirstStep != "true" {
		t.Errorf("step attributes = %+v", path.Step)
	}
	if path.Raw != "Path: 4,4, Position: 6,1, Previous: 2,3" {
		t.Errorf("Raw = %q", path.Raw)
	}
	if !strings.HasPrefix(path.Rendering, "Action: move - Step 1\n+") {
		t.Errorf("Rendering = %q", path.Rendering)
	}

	last := states[5].(*types.PathState)
	if last.Step.AngryBirds != "red" || last.Step.LastStep != "true" {
		t.Errorf("step attributes = %+v", last.Step)
	}
}

func TestWalkPositionOnlyStep(t *testing.T) {
	states := parseTestReplay(t)
	step := states[2].(*types.PathState)
	if len(step.Points) != 1 || step.Points[0].Kind != types.End {
		t.Fatalf("points = %v, want a single End point", step.Points)
	}
	if strings.Contains(step.Rendering, "Start Point") || strings.Contains(step.Rendering, "Path Points") {
		t.Errorf("Rendering has extra summary lines: %q", step.Rendering)
	}
	if !strings.Contains(step.Rendering, "End Point(E): (5,6)") {
		t.Errorf("Rendering = %q", step.Rendering)
	}
	if step.Raw != "Path: N/A, Position: 5,6, Previous: N/A" {
		t.Errorf("Raw = %q", step.Raw)
	}
}

func TestWalkEmptyAction(t *testing.T) {
	actions := []Action{
		{Name: "idle"},
		{Name: "steps", Steps: []Step{{Sym: "a", Win: "5"}, {}}},
	}
	doc := &Purchases{Purchase: &Purchase{Results: []Result{
		{ActionList: &ActionList{Ordered: &Ordered{Actions: actions}}},
		{},
	}}}

	states, err := Walk(doc)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("len(states) = %d, want 0", len(states))
	}
}

func TestWalkNoResults(t *testing.T) {
	doc, err := ParsePayload(`<PURCHASES><PURCHASE/></PURCHASES>`)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	states, err := Walk(doc)
	if err != nil || len(states) != 0 {
		t.Errorf("Walk = %v, %v; want no states, no error", states, err)
	}
}

func TestWalkNilDocument(t *testing.T) {
	if _, err := Walk(nil); !errors.Is(err, ErrNoPurchase) {
		t.Errorf("Walk(nil) error = %v, want ErrNoPurchase", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no game", `<response></response>`, ErrNoPayload},
		{"no pubdata", `<response><game/></response>`, ErrNoPayload},
		{"empty pubdata", `<response><game><pubdata></pubdata></game></response>`, ErrNoPurchase},
		{"wrong root", `<response><game><pubdata><![CDATA[<OTHER/>]]></pubdata></game></response>`, ErrNoPurchase},
		{"no purchase", `<response><game><pubdata><![CDATA[<PURCHASES></PURCHASES>]]></pubdata></game></response>`, ErrNoPurchase},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.doc))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader(`<response><game>`))
	if err == nil || !strings.Contains(err.Error(), "parse envelope:") {
		t.Errorf("error = %v, want parse envelope error", err)
	}

	_, err = Parse(strings.NewReader(`<response><game><pubdata><![CDATA[<PURCHASES><PURCHASE>]]></pubdata></game></response>`))
	if err == nil || !strings.Contains(err.Error(), "parse payload:") {
		t.Errorf("error = %v, want parse payload error", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempReplay(t, dir, "round.xml", testReplay)

	rep, err := NewWalker(nil, 8, 8).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if rep.FileName != "round.xml" {
		t.Errorf("FileName = %q, want %q", rep.FileName, "round.xml")
	}
	boards, paths := rep.Counts()
	if boards != 3 || paths != 3 {
		t.Errorf("Counts = %d, %d; want 3, 3", boards, paths)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := NewWalker(nil, 8, 8).LoadFile("/nonexistent/replay.xml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestListReplays(t *testing.T) {
	dir := t.TempDir()
	older := writeTempReplay(t, dir, "a.xml", testReplay)
	newer := writeTempReplay(t, dir, "b.XML", testReplay)
	writeTempReplay(t, dir, "notes.txt", "ignore me")

	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	files, err := ListReplays(dir)
	if err != nil {
		t.Fatalf("ListReplays: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if files[0] != newer || files[1] != older {
		t.Errorf("files = %v, want newest first", files)
	}
}

func TestListReplaysMissingDir(t *testing.T) {
	files, err := ListReplays(filepath.Join(t.TempDir(), "missing"))
	if err != nil || files != nil {
		t.Errorf("ListReplays = %v, %v; want nil, nil", files, err)
	}
}
