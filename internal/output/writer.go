package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

// SnapshotWriter is the interface for writing game state to output.
// Implementations handle the text board and JSON. Output may be buffered
// until Flush.
type SnapshotWriter interface {
	// WriteSnapshot writes one game's state. legal, when non-empty, lists
	// the moves to highlight or include.
	WriteSnapshot(id string, snap game.Snapshot, legal []chess.Move) error

	// WriteStatus writes whose turn it is and any result, without the board.
	WriteStatus(id string, st game.Status) error

	// WriteRecords writes a listing of stored games.
	WriteRecords(records []*storage.Record) error

	// Flush writes any buffered output.
	Flush() error
}

// NewWriter returns the writer selected by cfg.Output.
func NewWriter(w io.Writer, cfg *config.OutputConfig) SnapshotWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes boards and listings as plain text. The first write
// error is kept and returned by every later call.
type TextWriter struct {
	w   *bufio.Writer
	cfg *config.OutputConfig
	err error
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w), cfg: cfg}
}

func (tw *TextWriter) printf(format string, args ...interface{}) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// WriteSnapshot writes a header line, the board and a status line.
func (tw *TextWriter) WriteSnapshot(id string, snap game.Snapshot, legal []chess.Move) error {
	if id != "" {
		tw.printf("Game %s, ply %d\n", id, snap.Ply)
	}
	if tw.err == nil {
		tw.err = RenderBoard(tw.w, snap.Position.Board, tw.cfg, legal)
	}
	if tw.cfg.ShowCaptures {
		white, black := snap.MaterialAdvantage()
		tw.printf("White captured: %s (+%d)\n", pieceList(snap.CapturedByWhite), white)
		tw.printf("Black captured: %s (+%d)\n", pieceList(snap.CapturedByBlack), black)
	}
	if snap.LastMove != nil {
		tw.printf("Last move: %s\n", snap.LastMove)
	}
	if len(legal) > 0 {
		tw.printf("Legal:")
		for _, m := range legal {
			tw.printf(" %s", m)
		}
		tw.printf("\n")
	}
	tw.printf("%s\n", DescribeStatus(snap.Status))
	return tw.err
}

// WriteStatus writes the status sentence alone.
func (tw *TextWriter) WriteStatus(_ string, st game.Status) error {
	tw.printf("%s\n", DescribeStatus(st))
	return tw.err
}

// WriteRecords writes one line per stored game.
func (tw *TextWriter) WriteRecords(records []*storage.Record) error {
	for _, rec := range records {
		result := rec.Result
		if result == "" {
			result = "*"
		}
		line := fmt.Sprintf("%s  %s  ply %-4d %s", rec.ID, rec.Created.Format("2006-01-02 15:04"), len(rec.Moves), result)
		if rec.Reason != "" {
			line += " (" + rec.Reason + ")"
		}
		tw.printf("%s\n", line)
	}
	return tw.err
}

// Flush writes the buffered text.
func (tw *TextWriter) Flush() error {
	if tw.err != nil {
		return tw.err
	}
	tw.err = tw.w.Flush()
	return tw.err
}

// JSONWriter collects documents and writes them on Flush: a single
// document as itself, several as a JSON array.
type JSONWriter struct {
	w    io.Writer
	docs []interface{}
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteSnapshot queues snap as a JSONGame.
func (jw *JSONWriter) WriteSnapshot(id string, snap game.Snapshot, legal []chess.Move) error {
	jw.docs = append(jw.docs, SnapshotToJSON(id, snap, legal))
	return nil
}

// WriteStatus queues st as a JSONStatus.
func (jw *JSONWriter) WriteStatus(id string, st game.Status) error {
	jw.docs = append(jw.docs, StatusToJSON(id, st))
	return nil
}

// WriteRecords queues the listing as one JSON array.
func (jw *JSONWriter) WriteRecords(records []*storage.Record) error {
	out := make([]JSONRecord, len(records))
	for i, rec := range records {
		out[i] = RecordToJSON(rec)
	}
	jw.docs = append(jw.docs, out)
	return nil
}

// Flush writes the queued documents and empties the queue.
func (jw *JSONWriter) Flush() error {
	docs := jw.docs
	jw.docs = nil
	switch len(docs) {
	case 0:
		return nil
	case 1:
		return WriteJSON(jw.w, docs[0])
	default:
		return WriteJSON(jw.w, docs)
	}
}
