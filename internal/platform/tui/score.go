package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scoreKeeper remembers the latest score of a session and stores it once.
// Copies of a Model share one keeper, so a session that ends outside the
// Bubble Tea loop can still be saved.
type scoreKeeper struct {
	mu     sync.Mutex
	store  *storage.Store
	logger *log.Logger
	gameID string
	player string
	score  int
	saved  bool
}

// record tracks the score the next flush will store.
func (k *scoreKeeper) record(score int) {
	k.mu.Lock()
	k.score = score
	k.mu.Unlock()
}

// flush stores the recorded score unless it is zero or already stored.
func (k *scoreKeeper) flush() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.saved || k.score <= 0 {
		return
	}
	k.saved = true
	if k.store == nil {
		return
	}
	if _, err := k.store.SaveScore(k.gameID, k.player, k.score); err != nil {
		k.logger.Warn("could not save score", "error", err)
		return
	}
	k.logger.Info("score saved", "player", k.player, "score", k.score)
}

// reset starts a new session.
func (k *scoreKeeper) reset() {
	k.mu.Lock()
	k.score = 0
	k.saved = false
	k.mu.Unlock()
}

// isSaved reports whether the current session's score has been stored.
func (k *scoreKeeper) isSaved() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.saved
}

// saveWhenDone blocks until ctx ends, then stores the session score.
// SSH sessions use it so a dropped connection keeps its score.
func (m Model) saveWhenDone(ctx context.Context) {
	<-ctx.Done()
	m.scores.flush()
}
