package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/storage"
	"github.com/lgbarn/chess-arbiter/internal/testutil"
)

func replay(t *testing.T, moves ...string) *game.Game {
	t.Helper()
	g, err := game.Replay(moves)
	testutil.AssertNoError(t, err)
	return g
}

func TestRenderBoard_Initial(t *testing.T) {
	var buf bytes.Buffer
	err := RenderBoard(&buf, chess.NewInitialBoard(), config.NewOutputConfig(), nil)
	testutil.AssertNoError(t, err)

	want := strings.Join([]string{
		"  +-----------------+",
		"8 | r n b q k b n r |",
		"7 | p p p p p p p p |",
		"6 | . . . . . . . . |",
		"5 | . . . . . . . . |",
		"4 | . . . . . . . . |",
		"3 | . . . . . . . . |",
		"2 | P P P P P P P P |",
		"1 | R N B Q K B N R |",
		"  +-----------------+",
		"    a b c d e f g h",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_UnicodeNoCoordinates(t *testing.T) {
	var buf bytes.Buffer
	opts := &config.OutputConfig{Unicode: true}
	testutil.AssertNoError(t, RenderBoard(&buf, chess.NewInitialBoard(), opts, nil))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 8)
	testutil.AssertEqual(t, lines[0], "♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜")
	testutil.AssertEqual(t, lines[7], "♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖")
	testutil.AssertEqual(t, lines[3], "· · · · · · · ·")
}

func TestRenderBoard_Highlights(t *testing.T) {
	g := replay(t, "e2e4", "d7d5")
	legal := g.LegalMoves(chess.MustParseSquare("e4"))

	var buf bytes.Buffer
	opts := &config.OutputConfig{}
	testutil.AssertNoError(t, RenderBoard(&buf, g.Position().Board, opts, legal))

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[3], ". . . x * . . .")
}

func TestDescribeStatus(t *testing.T) {
	tests := []struct {
		name   string
		status game.Status
		want   string
	}{
		{"white to move", game.Status{Turn: chess.White}, "White to move."},
		{"black in check", game.Status{Turn: chess.Black, InCheck: true}, "Black to move, in check."},
		{"checkmate", game.Status{GameOver: true, Terminal: &game.Terminal{Reason: game.Checkmate, Winner: chess.Black}}, "Checkmate. Black wins."},
		{"stalemate", game.Status{GameOver: true, Terminal: &game.Terminal{Reason: game.Stalemate}}, "Draw by stalemate."},
		{"repetition", game.Status{GameOver: true, Terminal: &game.Terminal{Reason: game.Repetition}}, "Draw by threefold repetition."},
		{"material", game.Status{GameOver: true, Terminal: &game.Terminal{Reason: game.InsufficientMaterial}}, "Draw by insufficient material."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, DescribeStatus(tt.status), tt.want)
		})
	}
}

func TestSnapshotToJSON(t *testing.T) {
	g := replay(t, "f2f3", "e7e5", "g2g4", "d8h4")
	jg := SnapshotToJSON("abc", g.Snapshot(), nil)

	testutil.AssertEqual(t, jg.ID, "abc")
	testutil.AssertEqual(t, jg.Turn, "White")
	testutil.AssertEqual(t, jg.State, "GameOver")
	testutil.AssertTrue(t, jg.InCheck, "InCheck")
	testutil.AssertEqual(t, jg.Result, "0-1")
	testutil.AssertEqual(t, jg.Reason, "Checkmate")
	testutil.AssertEqual(t, jg.Winner, "Black")
	testutil.AssertEqual(t, jg.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, jg.LastMove, &JSONMove{UCI: "d8h4", From: "d8", To: "h4"})
	testutil.AssertEqual(t, jg.Board[4], "......Pq")
	testutil.AssertEqual(t, jg.Castling, "KQkq")
}

func TestSnapshotToJSON_EnPassantAndCaptures(t *testing.T) {
	g := replay(t, "e2e4", "d7d5", "e4d5", "c7c5")
	legal := g.LegalMoves(chess.MustParseSquare("d5"))
	jg := SnapshotToJSON("", g.Snapshot(), legal)

	testutil.AssertEqual(t, jg.EnPassant, "c6")
	testutil.AssertEqual(t, jg.CapturedByWhite, []string{"Pawn"})
	testutil.AssertEqual(t, jg.CapturedByBlack, []string{})
	testutil.AssertEqual(t, jg.Material, JSONMaterial{White: 1})

	var ep *JSONMove
	for i := range jg.Legal {
		if jg.Legal[i].Special == "en-passant" {
			ep = &jg.Legal[i]
		}
	}
	testutil.AssertEqual(t, ep, &JSONMove{UCI: "d5c6", From: "d5", To: "c6", Capture: true, Special: "en-passant"})
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, &config.OutputConfig{JSON: true})
	testutil.AssertNoError(t, w.WriteSnapshot("id1", game.New().Snapshot(), nil))
	testutil.AssertNoError(t, w.Flush())

	var decoded JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.ID, "id1")
	testutil.AssertEqual(t, decoded.Turn, "White")
	testutil.AssertEqual(t, decoded.Board[0], "rnbqkbnr")
	testutil.AssertFalse(t, decoded.GameOver, "GameOver")
}

func TestTextWriter(t *testing.T) {
	g := replay(t, "e2e4", "d7d5", "e4d5")
	var buf bytes.Buffer
	w := NewWriter(&buf, config.NewOutputConfig())
	testutil.AssertNoError(t, w.WriteSnapshot("id1", g.Snapshot(), nil))
	testutil.AssertNoError(t, w.Flush())

	out := buf.String()
	for _, want := range []string{
		"Game id1, ply 3\n",
		"White captured: P (+1)\n",
		"Black captured: - (+0)\n",
		"Last move: e4d5\n",
		"Black to move.\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRecords(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	records := []*storage.Record{
		{ID: "g1", Created: created, Updated: created, Moves: []string{"e2e4"}},
		{ID: "g2", Created: created, Updated: created, Moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"}, Result: "0-1", Reason: "Checkmate"},
	}

	var text bytes.Buffer
	tw := NewTextWriter(&text, config.NewOutputConfig())
	testutil.AssertNoError(t, tw.WriteRecords(records))
	testutil.AssertNoError(t, tw.Flush())
	testutil.AssertEqual(t, text.String(),
		"g1  2024-03-01 12:30  ply 1    *\n"+
			"g2  2024-03-01 12:30  ply 4    0-1 (Checkmate)\n")

	var js bytes.Buffer
	jw := NewJSONWriter(&js)
	testutil.AssertNoError(t, jw.WriteRecords(records))
	testutil.AssertNoError(t, jw.Flush())
	var decoded []JSONRecord
	testutil.AssertNoError(t, json.Unmarshal(js.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded, []JSONRecord{
		{ID: "g1", Created: "2024-03-01T12:30:00Z", Updated: "2024-03-01T12:30:00Z", Ply: 1},
		{ID: "g2", Created: "2024-03-01T12:30:00Z", Updated: "2024-03-01T12:30:00Z", Ply: 4, Result: "0-1", Reason: "Checkmate"},
	})
}

func TestJSONWriter_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteSnapshot("a", game.New().Snapshot(), nil))
	testutil.AssertNoError(t, w.WriteSnapshot("b", replay(t, "e2e4").Snapshot(), nil))
	testutil.AssertEqual(t, buf.Len(), 0)

	testutil.AssertNoError(t, w.Flush())
	var decoded []JSONGame
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, len(decoded), 2)
	testutil.AssertEqual(t, decoded[1].ID, "b")
	testutil.AssertEqual(t, decoded[1].Ply, 1)

	buf.Reset()
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestWriteStatus(t *testing.T) {
	g := replay(t, "f2f3", "e7e5", "g2g4", "d8h4")

	var text bytes.Buffer
	tw := NewTextWriter(&text, config.NewOutputConfig())
	testutil.AssertNoError(t, tw.WriteStatus("g1", g.Status()))
	testutil.AssertNoError(t, tw.Flush())
	testutil.AssertEqual(t, text.String(), "Checkmate. Black wins.\n")

	var js bytes.Buffer
	jw := NewWriter(&js, &config.OutputConfig{JSON: true})
	testutil.AssertNoError(t, jw.WriteStatus("g1", g.Status()))
	testutil.AssertNoError(t, jw.Flush())
	var decoded JSONStatus
	testutil.AssertNoError(t, json.Unmarshal(js.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded, JSONStatus{
		ID:       "g1",
		Turn:     "White",
		InCheck:  true,
		GameOver: true,
		Result:   "0-1",
		Reason:   "Checkmate",
		Winner:   "Black",
		Message:  "Checkmate. Black wins.",
	})
}

// failingWriter fails its nth Write call (1-based) and accepts the rest.
type failingWriter struct {
	n, calls int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls == w.n {
		return 0, errWriteFailed
	}
	return len(p), nil
}

func TestTextWriter_ReportsWriteErrors(t *testing.T) {
	g := replay(t, "e2e4", "d7d5", "e4d5")

	fw := &failingWriter{n: 1}
	w := NewTextWriter(fw, config.NewOutputConfig())
	testutil.AssertNoError(t, w.WriteSnapshot("id1", g.Snapshot(), nil))
	testutil.AssertErrorIs(t, w.Flush(), errWriteFailed)

	// The error sticks even though the underlying writer would now succeed.
	testutil.AssertErrorIs(t, w.WriteStatus("id1", g.Status()), errWriteFailed)
	testutil.AssertErrorIs(t, w.Flush(), errWriteFailed)
}
