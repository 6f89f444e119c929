package storage

import (
	"testing"
	"time"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestLedgerStartsEmpty(t *testing.T) {
	l := openLedger(t)
	plays, err := l.Plays(0)
	if err != nil {
		t.Fatalf("Plays() failed: %v", err)
	}
	if len(plays) != 0 {
		t.Errorf("fresh ledger has %d plays", len(plays))
	}
	best, err := l.Best("snake")
	if err != nil || best != 0 {
		t.Errorf("Best() = %d, %v, expected 0, nil", best, err)
	}
}

func TestLedgersAreIndependent(t *testing.T) {
	a, b := openLedger(t), openLedger(t)
	if _, err := a.Record(Play{GameID: "snake", Score: 10}); err != nil {
		t.Fatal(err)
	}
	plays, err := b.Plays(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(plays) != 0 {
		t.Errorf("second ledger sees %d plays of the first", len(plays))
	}
}

func TestRecordAndQuery(t *testing.T) {
	l := openLedger(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []Play{
		{GameID: "snake", Score: 30, Duration: 90 * time.Second, EndedAt: base},
		{GameID: "snake", Score: 120, EndedAt: base.Add(time.Minute)},
		{GameID: "tetris", Score: 800, EndedAt: base.Add(2 * time.Minute)},
		{GameID: "snake", Score: 50, EndedAt: base.Add(3 * time.Minute)},
	}
	for _, p := range records {
		if _, err := l.Record(p); err != nil {
			t.Fatalf("Record(%+v) failed: %v", p, err)
		}
	}

	best, err := l.Best("snake")
	if err != nil || best != 120 {
		t.Errorf("Best(snake) = %d, %v, expected 120", best, err)
	}

	all, err := l.BestByGame()
	if err != nil {
		t.Fatal(err)
	}
	if all["snake"] != 120 || all["tetris"] != 800 || len(all) != 2 {
		t.Errorf("BestByGame() = %v", all)
	}

	recent, err := l.Plays(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Score != 50 || recent[1].GameID != "tetris" {
		t.Errorf("Plays(2) = %+v, expected most recent first", recent)
	}

	top, err := l.TopScores("snake", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{120, 50, 30}
	if len(top) != len(want) {
		t.Fatalf("TopScores() returned %d plays", len(top))
	}
	for i, p := range top {
		if p.Score != want[i] {
			t.Errorf("TopScores()[%d] = %d, expected %d", i, p.Score, want[i])
		}
	}
	if top[2].Duration != 90*time.Second || !top[2].EndedAt.Equal(base) {
		t.Errorf("round trip lost fields: %+v", top[2])
	}
}

func TestRecordRequiresGame(t *testing.T) {
	l := openLedger(t)
	if _, err := l.Record(Play{Score: 5}); err == nil {
		t.Error("Record() without a game id should fail")
	}
}

func TestRecordDefaultsEndedAt(t *testing.T) {
	l := openLedger(t)
	before := time.Now().Add(-time.Second)
	if _, err := l.Record(Play{GameID: "pong", Score: 3}); err != nil {
		t.Fatal(err)
	}
	plays, _ := l.Plays(1)
	if len(plays) != 1 || plays[0].EndedAt.Before(before) {
		t.Errorf("EndedAt = %v, expected about now", plays)
	}
}
