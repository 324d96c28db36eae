package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/storage"
)

// JSONGame is a snapshot in JSON form.
type JSONGame struct {
	ID              string       `json:"id,omitempty"`
	Board           []string     `json:"board"` // rank 8 first, '.' for empty
	Turn            string       `json:"turn"`
	State           string       `json:"state"`
	InCheck         bool         `json:"inCheck"`
	GameOver        bool         `json:"gameOver"`
	Result          string       `json:"result,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	Winner          string       `json:"winner,omitempty"`
	Castling        string       `json:"castling"`
	EnPassant       string       `json:"enPassant,omitempty"`
	Ply             int          `json:"ply"`
	LastMove        *JSONMove    `json:"lastMove,omitempty"`
	Moves           []string     `json:"moves"`
	CapturedByWhite []string     `json:"capturedByWhite"`
	CapturedByBlack []string     `json:"capturedByBlack"`
	Material        JSONMaterial `json:"material"`
	Legal           []JSONMove   `json:"legal,omitempty"`
}

// JSONMove is a move in JSON form.
type JSONMove struct {
	UCI     string `json:"uci"`
	From    string `json:"from"`
	To      string `json:"to"`
	Capture bool   `json:"capture,omitempty"`
	Special string `json:"special,omitempty"`
}

// JSONMaterial holds each side's lead in captured material.
type JSONMaterial struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// JSONStatus is the status of a game without its board.
type JSONStatus struct {
	ID       string `json:"id,omitempty"`
	Turn     string `json:"turn"`
	InCheck  bool   `json:"inCheck"`
	GameOver bool   `json:"gameOver"`
	Result   string `json:"result,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Winner   string `json:"winner,omitempty"`
	Message  string `json:"message"`
}

// JSONRecord summarises a stored game for listings.
type JSONRecord struct {
	ID      string `json:"id"`
	Created string `json:"created"`
	Updated string `json:"updated"`
	Ply     int    `json:"ply"`
	Result  string `json:"result,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// MoveToJSON converts a move.
func MoveToJSON(m chess.Move) JSONMove {
	jm := JSONMove{
		UCI:     m.String(),
		From:    m.From.String(),
		To:      m.To.String(),
		Capture: m.Capture,
	}
	if m.Special != chess.NoSpecial {
		jm.Special = m.Special.String()
	}
	return jm
}

// SnapshotToJSON converts a snapshot. legal, if non-empty, is included as
// the list of moves on offer.
func SnapshotToJSON(id string, snap game.Snapshot, legal []chess.Move) *JSONGame {
	pos := snap.Position
	jg := &JSONGame{
		ID:              id,
		Board:           boardRows(pos.Board),
		Turn:            snap.Status.Turn.String(),
		State:           snap.State.String(),
		InCheck:         snap.Status.InCheck,
		GameOver:        snap.Status.GameOver,
		Castling:        pos.Castling.String(),
		Ply:             snap.Ply,
		Moves:           make([]string, len(snap.History)),
		CapturedByWhite: pieceNames(snap.CapturedByWhite),
		CapturedByBlack: pieceNames(snap.CapturedByBlack),
	}
	jg.Result, jg.Reason, jg.Winner = terminalFields(snap.Status.Terminal)
	if ep, ok := pos.EnPassantTarget(); ok {
		jg.EnPassant = ep.String()
	}
	if snap.LastMove != nil {
		lm := MoveToJSON(*snap.LastMove)
		jg.LastMove = &lm
	}
	for i, m := range snap.History {
		jg.Moves[i] = m.String()
	}
	jg.Material.White, jg.Material.Black = snap.MaterialAdvantage()
	for _, m := range legal {
		jg.Legal = append(jg.Legal, MoveToJSON(m))
	}
	return jg
}

// StatusToJSON converts a status.
func StatusToJSON(id string, st game.Status) *JSONStatus {
	js := &JSONStatus{
		ID:       id,
		Turn:     st.Turn.String(),
		InCheck:  st.InCheck,
		GameOver: st.GameOver,
		Message:  DescribeStatus(st),
	}
	js.Result, js.Reason, js.Winner = terminalFields(st.Terminal)
	return js
}

// terminalFields returns result, reason and winner, all empty while the
// game is running. Draws have no winner.
func terminalFields(t *game.Terminal) (result, reason, winner string) {
	if t == nil {
		return "", "", ""
	}
	if !t.IsDraw() {
		winner = t.Winner.String()
	}
	return t.Result(), t.Reason.String(), winner
}

// RecordToJSON summarises a stored record.
func RecordToJSON(rec *storage.Record) JSONRecord {
	return JSONRecord{
		ID:      rec.ID,
		Created: rec.Created.Format(time.RFC3339),
		Updated: rec.Updated.Format(time.RFC3339),
		Ply:     len(rec.Moves),
		Result:  rec.Result,
		Reason:  rec.Reason,
	}
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func boardRows(board *chess.Board) []string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			row[file] = CellText(board.Get(chess.Sq(file, rank)), false)[0]
		}
		rows = append(rows, string(row))
	}
	return rows
}

func pieceNames(pieces []chess.Piece) []string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.String()
	}
	return names
}
