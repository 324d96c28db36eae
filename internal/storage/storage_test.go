package storage

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/lgbarn/chess-arbiter/internal/config"
	"github.com/lgbarn/chess-arbiter/internal/errors"
	"github.com/lgbarn/chess-arbiter/internal/game"
	"github.com/lgbarn/chess-arbiter/internal/testutil"
)

func openMemory(t *testing.T) *GameStore {
	t.Helper()
	s, err := Open(&config.StorageConfig{InMemory: true}, nil)
	testutil.AssertNoError(t, err, "Open")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateLoad(t *testing.T) {
	s := openMemory(t)

	rec, err := s.Create()
	testutil.AssertNoError(t, err)
	if rec.ID == "" {
		t.Fatal("Create returned an empty ID")
	}

	loaded, err := s.Load(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded, rec)
}

func TestLoadMissing(t *testing.T) {
	s := openMemory(t)
	_, err := s.Load("no-such-game")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestSaveGame(t *testing.T) {
	s := openMemory(t)
	rec, err := s.Create()
	testutil.AssertNoError(t, err)

	g, err := game.Replay([]string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertNoError(t, err)
	rec.SetGame(g)
	testutil.AssertNoError(t, s.Save(rec))

	loaded, err := s.Load(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, loaded.Result, "0-1")
	testutil.AssertEqual(t, loaded.Reason, "Checkmate")

	replayed, err := loaded.Game()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replayed.Snapshot(), g.Snapshot())
}

func TestRecordGameRejectsCorruptLog(t *testing.T) {
	rec := &Record{ID: "broken", Moves: []string{"e2e4", "e7e5", "e1e3"}}
	_, err := rec.Game()
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestDelete(t *testing.T) {
	s := openMemory(t)
	rec, err := s.Create()
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, s.Delete(rec.ID))
	_, err = s.Load(rec.ID)
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
	testutil.AssertErrorIs(t, s.Delete(rec.ID), errors.ErrGameNotFound)
}

func TestListOrdersByCreation(t *testing.T) {
	s := openMemory(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		rec, err := s.Create()
		testutil.AssertNoError(t, err)
		rec.Created = base.Add(time.Duration(2-i) * time.Hour)
		testutil.AssertNoError(t, s.Save(rec))
		ids = append([]string{rec.ID}, ids...)
	}

	records, err := s.List()
	testutil.AssertNoError(t, err)
	var got []string
	for _, r := range records {
		got = append(got, r.ID)
	}
	testutil.AssertEqual(t, got, ids)
}

func TestListEmpty(t *testing.T) {
	s := openMemory(t)
	records, err := s.List()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 0)
}

func TestOnDiskPersistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	var log bytes.Buffer

	s, err := Open(&config.StorageConfig{Dir: dir, SyncWrites: true}, &log)
	testutil.AssertNoError(t, err)
	rec, err := s.Create()
	testutil.AssertNoError(t, err)
	rec.Moves = []string{"e2e4"}
	testutil.AssertNoError(t, s.Save(rec))
	testutil.AssertNoError(t, s.Close())

	s, err = Open(&config.StorageConfig{Dir: dir}, nil)
	testutil.AssertNoError(t, err)
	defer s.Close()
	loaded, err := s.Load(rec.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, loaded.Moves, []string{"e2e4"})
}

func TestOpenRequiresDir(t *testing.T) {
	_, err := Open(&config.StorageConfig{}, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestBadgerLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &badgerLogger{w: &buf}
	l.Infof("replaying %d files\n", 2)
	l.Debugf("ignored")
	testutil.AssertEqual(t, buf.String(), "badger INFO: replaying 2 files\n")
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("HOME", "/home/tester")
	dir, err := DefaultDir()
	testutil.AssertNoError(t, err)
	if filepath.Base(dir) != "db" || filepath.Base(filepath.Dir(dir)) != appName {
		t.Errorf("DefaultDir() = %q, want .../%s/db", dir, appName)
	}
}
