package livestate_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/saqh5037/quizApp-sub002/internal/livestate"
)

func newTestStore(t *testing.T) *livestate.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return livestate.NewStore(client)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	snap := &livestate.Snapshot{
		SessionCode:          "ab12cd",
		Status:               "active",
		CurrentQuestionIndex: 2,
		QuestionCount:        5,
		Leaderboard: []livestate.LeaderboardEntry{
			{ParticipantID: 1, Nickname: "ada", Score: 25},
			{ParticipantID: 2, Nickname: "grace", Score: 12},
		},
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Get(ctx, "ab12cd")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if got.Status != "active" || got.CurrentQuestionIndex != 2 || got.QuestionCount != 5 {
		t.Errorf("unexpected snapshot: %+v", got)
	}
	if len(got.Leaderboard) != 2 || got.Leaderboard[0].Nickname != "ada" {
		t.Errorf("leaderboard not preserved: %+v", got.Leaderboard)
	}
}

func TestGetMissingSnapshot(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing snapshot, got %+v", got)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Save(ctx, &livestate.Snapshot{SessionCode: "zz99xx", Status: "waiting"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "zz99xx"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err := store.Get(ctx, "zz99xx")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected snapshot to be gone after delete")
	}
}
