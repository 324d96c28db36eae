// Package storage persists game records in BadgerDB. A record holds a
// game's coordinate move log and, once it has ended, its result; the board
// itself is never stored and is rebuilt by replaying the log.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/errors"
	"github.com/lgbarn/chess-arbiter/internal/game"
)

const keyPrefix = "game/"

// Record is a stored game.
type Record struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
	Moves   []string  `json:"moves"`
	Result  string    `json:"result,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// SetGame copies g's move log and outcome into the record.
func (r *Record) SetGame(g *game.Game) {
	r.Moves = g.MoveLog()
	r.Result, r.Reason = "", ""
	if t := g.Terminal(); t != nil {
		r.Result = t.Result()
		r.Reason = t.Reason.String()
	}
}

// Game rebuilds the game by replaying the record's move log.
func (r *Record) Game() (*game.Game, error) {
	g, err := game.Replay(r.Moves)
	if err != nil {
		return nil, errors.Wrapf(err, "game %s", r.ID)
	}
	return g, nil
}

// GameStore wraps BadgerDB for persistent game records.
type GameStore struct {
	db *badger.DB
}

// Open opens or creates the store described by cfg. Badger's own log
// lines go to log; a nil log disables them.
func Open(cfg *config.StorageConfig, log io.Writer) (*GameStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites)
	if log != nil {
		opts.Logger = &badgerLogger{w: log}
	} else {
		opts.Logger = nil
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open game store")
	}
	return &GameStore{db: db}, nil
}

// Close closes the database.
func (s *GameStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(keyPrefix + id)
}

// Create stores a new empty record with a fresh ID.
func (s *GameStore) Create() (*Record, error) {
	now := time.Now().UTC()
	rec := &Record{
		ID:      uuid.NewString(),
		Created: now,
		Updated: now,
		Moves:   []string{},
	}
	if err := s.put(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save writes rec, replacing any stored record with the same ID.
func (s *GameStore) Save(rec *Record) error {
	rec.Updated = time.Now().UTC()
	return s.put(rec)
}

func (s *GameStore) put(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// Load returns the record with the given ID, or an error wrapping
// errors.ErrGameNotFound.
func (s *GameStore) Load(id string) (*Record, error) {
	rec := &Record{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the record with the given ID.
func (s *GameStore) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

// List returns every stored record, oldest first.
func (s *GameStore) List() ([]*Record, error) {
	var records []*Record
	prefix := []byte(keyPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &Record{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Created.Equal(records[j].Created) {
			return records[i].ID < records[j].ID
		}
		return records[i].Created.Before(records[j].Created)
	})
	return records, nil
}

// badgerLogger routes badger's log lines to a writer.
type badgerLogger struct {
	w io.Writer
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR", format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.printf("WARNING", format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.printf("INFO", format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {}

func (l *badgerLogger) printf(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	fmt.Fprintf(l.w, "badger %s: %s\n", level, msg)
}
