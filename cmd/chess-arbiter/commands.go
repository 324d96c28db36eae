package main

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter/internal/chess"
	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/errors"
	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/output"
	"github.com/lgbarn/chess-arbiter/internal/storage"
	"github.com/lgbarn/chess-arbiter/internal/worker"
)

// session carries what every command needs.
type session struct {
	cfg   *config.Config
	store *storage.GameStore
	out   output.SnapshotWriter
}

type command struct {
	args    string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(s *session, args []string) error
}

var commands = map[string]command{
	"new":    {"", "Start a game and print its ID", 0, 0, cmdNew},
	"show":   {"ID", "Print the board and status", 1, 1, cmdShow},
	"moves":  {"ID SQUARE", "List legal moves for the piece on SQUARE", 2, 2, cmdMoves},
	"move":   {"ID MOVE...", "Play one or more moves", 2, -1, cmdMove},
	"status": {"ID", "Print whose turn it is and any result", 1, 1, cmdStatus},
	"list":   {"", "List stored games", 0, 0, cmdList},
	"delete": {"ID", "Delete a stored game", 1, 1, cmdDelete},
	"reset":  {"ID", "Return a game to the initial position", 1, 1, cmdReset},
	"verify": {"", "Replay every stored game and check its result", 0, 0, cmdVerify},
}

var commandOrder = []string{"new", "show", "moves", "move", "status", "list", "delete", "reset", "verify"}

// run dispatches args[0] to its command.
func run(cfg *config.Config, store *storage.GameStore, args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "no command given")
	}
	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		return fmt.Errorf("usage: chess-arbiter %s %s", name, cmd.args)
	}

	s := &session{
		cfg:   cfg,
		store: store,
		out:   output.NewWriter(cfg.OutputFile, cfg.Output),
	}
	if err := cmd.run(s, rest); err != nil {
		return err
	}
	return s.out.Flush()
}

// load fetches a record and replays it.
func (s *session) load(id string) (*storage.Record, *game.Game, error) {
	rec, err := s.store.Load(id)
	if err != nil {
		return nil, nil, err
	}
	g, err := rec.Game()
	if err != nil {
		return nil, nil, err
	}
	return rec, g, nil
}

func cmdNew(s *session, _ []string) error {
	rec, err := s.store.Create()
	if err != nil {
		return err
	}
	s.cfg.Logf(config.Commentary, "Created game %s\n", rec.ID)
	return s.out.WriteSnapshot(rec.ID, game.New().Snapshot(), nil)
}

func cmdShow(s *session, args []string) error {
	rec, g, err := s.load(args[0])
	if err != nil {
		return err
	}
	return s.out.WriteSnapshot(rec.ID, g.Snapshot(), nil)
}

func cmdMoves(s *session, args []string) error {
	rec, g, err := s.load(args[0])
	if err != nil {
		return err
	}
	sq, err := chess.ParseSquare(args[1])
	if err != nil {
		return err
	}
	legal := g.LegalMoves(sq)
	s.cfg.Logf(config.Commentary, "%d legal moves from %s\n", len(legal), sq)
	return s.out.WriteSnapshot(rec.ID, g.Snapshot(), legal)
}

// cmdMove plays the moves in order. Moves accepted before a rejected one
// are kept and saved.
func cmdMove(s *session, args []string) error {
	rec, g, err := s.load(args[0])
	if err != nil {
		return err
	}

	var moveErr error
	played := 0
	for _, text := range args[1:] {
		if _, err := g.ApplyCoordinate(text); err != nil {
			var me *errors.MoveError
			if errors.As(err, &me) {
				me.GameID = rec.ID
			}
			moveErr = err
			break
		}
		played++
		s.cfg.Logf(config.Commentary, "Played %s\n", text)
	}

	if played > 0 {
		rec.SetGame(g)
		if err := s.store.Save(rec); err != nil {
			return err
		}
	}
	if moveErr != nil {
		return moveErr
	}

	if t := g.Terminal(); t != nil {
		s.cfg.Logf(config.Summary, "Game %s over: %s\n", rec.ID, output.DescribeTerminal(t))
	}
	return s.out.WriteSnapshot(rec.ID, g.Snapshot(), nil)
}

func cmdStatus(s *session, args []string) error {
	rec, g, err := s.load(args[0])
	if err != nil {
		return err
	}
	return s.out.WriteStatus(rec.ID, g.Status())
}

func cmdList(s *session, _ []string) error {
	records, err := s.store.List()
	if err != nil {
		return err
	}
	s.cfg.Logf(config.Commentary, "%d stored games\n", len(records))
	return s.out.WriteRecords(records)
}

func cmdDelete(s *session, args []string) error {
	if err := s.store.Delete(args[0]); err != nil {
		return err
	}
	s.cfg.Logf(config.Summary, "Deleted game %s\n", args[0])
	return nil
}

func cmdReset(s *session, args []string) error {
	rec, g, err := s.load(args[0])
	if err != nil {
		return err
	}
	snap := g.Reset()
	rec.SetGame(g)
	if err := s.store.Save(rec); err != nil {
		return err
	}
	return s.out.WriteSnapshot(rec.ID, snap, nil)
}

func cmdVerify(s *session, _ []string) error {
	records, err := s.store.List()
	if err != nil {
		return err
	}

	results := worker.VerifyAll(records, worker.Options{Workers: s.cfg.Workers, FailFast: *failFast})
	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(s.cfg.LogFile, "%s: %v\n", res.Record.ID, res.Error)
			continue
		}
		s.cfg.Logf(config.Commentary, "%s: ok, ply %d\n", res.Record.ID, res.Snapshot.Ply)
	}
	s.cfg.Logf(config.Summary, "%d games checked, %d failed\n", len(results), failed)

	if failed > 0 {
		return errors.Wrapf(errors.ErrInconsistentState, "%d of %d games failed verification", failed, len(results))
	}
	return nil
}
