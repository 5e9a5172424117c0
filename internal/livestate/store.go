package livestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "session:"
	snapshotTTL = 2 * time.Hour
)

// LeaderboardEntry is one participant's standing within a snapshot.
type LeaderboardEntry struct {
	ParticipantID uint   `json:"participant_id"`
	Nickname      string `json:"nickname"`
	Score         int    `json:"score"`
}

// Snapshot is the compact session state that polling clients read between
// requests. The database stays the source of truth; a missing snapshot is
// rebuilt from it.
type Snapshot struct {
	SessionCode          string             `json:"session_code"`
	Status               string             `json:"status"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	QuestionCount        int                `json:"question_count"`
	Leaderboard          []LeaderboardEntry `json:"leaderboard"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// Store keeps session snapshots in Redis with a sliding TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: snapshotTTL}
}

func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+snap.SessionCode, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session snapshot: %w", err)
	}
	return nil
}

// Get returns the snapshot for a session code, or (nil, nil) when none is
// cached.
func (s *Store) Get(ctx context.Context, code string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, keyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	return &snap, nil
}

func (s *Store) Delete(ctx context.Context, code string) error {
	return s.client.Del(ctx, keyPrefix+code).Err()
}
