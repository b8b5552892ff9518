package service

import (
	"context"
	"testing"
	"time"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaignFixture(id string, passingScore int) *model.Campaign {
	c := &model.Campaign{Name: "Campaign " + id, PassingScore: passingScore}
	c.ID = id
	return c
}

func candidateFixture(id, campaignID string, status model.CandidateStatus, score int) model.Candidate {
	c := model.Candidate{
		FirstName:  "First",
		LastName:   id,
		Email:      id + "@example.com",
		CampaignID: campaignID,
		Status:     status,
		Score:      score,
	}
	c.ID = id
	return c
}

func TestBuildResultsOnlyCompleted(t *testing.T) {
	campaigns := map[string]*model.Campaign{"c1": campaignFixture("c1", 70)}
	candidates := []model.Candidate{
		candidateFixture("a", "c1", model.CandidateCompleted, 80),
		candidateFixture("b", "c1", model.CandidateInProgress, 95),
		candidateFixture("c", "c1", model.CandidateInvited, 0),
		candidateFixture("d", "c1", model.CandidateNotStarted, 0),
	}

	results, err := BuildResults(candidates, campaigns)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].CandidateID)
	assert.Equal(t, 1, results[0].Rank)
}

func TestBuildResultsOrderingAndRanks(t *testing.T) {
	campaigns := map[string]*model.Campaign{"c1": campaignFixture("c1", 70)}
	// 输入顺序即仓库的稳定顺序（created_at asc）
	candidates := []model.Candidate{
		candidateFixture("low", "c1", model.CandidateCompleted, 60),
		candidateFixture("tieFirst", "c1", model.CandidateCompleted, 85),
		candidateFixture("tieSecond", "c1", model.CandidateCompleted, 85),
		candidateFixture("top", "c1", model.CandidateCompleted, 92),
	}

	results, err := BuildResults(candidates, campaigns)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, []string{"top", "tieFirst", "tieSecond", "low"}, []string{
		results[0].CandidateID, results[1].CandidateID, results[2].CandidateID, results[3].CandidateID,
	})
	// 同分不共享名次，名次严格为 1..N
	for i, r := range results {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestBuildResultsPerCampaignPassingScore(t *testing.T) {
	campaigns := map[string]*model.Campaign{
		"strict":  campaignFixture("strict", 90),
		"lenient": campaignFixture("lenient", 50),
	}
	candidates := []model.Candidate{
		candidateFixture("a", "strict", model.CandidateCompleted, 80),
		candidateFixture("b", "lenient", model.CandidateCompleted, 80),
	}

	results, err := BuildResults(candidates, campaigns)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byID := map[string]Result{}
	for _, r := range results {
		byID[r.CandidateID] = r
	}
	assert.Equal(t, "failed", byID["a"].Status)
	assert.Equal(t, "passed", byID["b"].Status)
}

func TestBuildResultsMissingCampaign(t *testing.T) {
	candidates := []model.Candidate{
		candidateFixture("a", "ghost", model.CandidateCompleted, 80),
	}
	_, err := BuildResults(candidates, map[string]*model.Campaign{})
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrConsistency)
}

func TestTimeTakenMinutes(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		started   *time.Time
		completed *time.Time
		want      int
	}{
		{"45 minutes", &start, timePtr(start.Add(45 * time.Minute)), 45},
		{"rounds to nearest minute", &start, timePtr(start.Add(44*time.Minute + 40*time.Second)), 45},
		{"missing start", nil, timePtr(start), 0},
		{"missing completion", &start, nil, 0},
		{"clock skew floors at zero", &start, timePtr(start.Add(-5 * time.Minute)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeTakenMinutes(tt.started, tt.completed))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestLeaderboardCacheKeys(t *testing.T) {
	assert.Equal(t, "leaderboard:global", leaderboardCacheKey(""))
	assert.Equal(t, "leaderboard:campaign:c1", leaderboardCacheKey("c1"))
}

// commandCaptureHook 记录客户端发出的命令，用于断言缓存失效覆盖了哪些 key
type commandCaptureHook struct {
	commands [][]interface{}
}

func (h *commandCaptureHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	h.commands = append(h.commands, cmd.Args())
	return ctx, nil
}

func (h *commandCaptureHook) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	return nil
}

func (h *commandCaptureHook) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *commandCaptureHook) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	return nil
}

func TestInvalidateLeaderboards(t *testing.T) {
	// 没有 redis 就没有缓存可失效，必须是静默 no-op
	assert.NoError(t, InvalidateLeaderboards(nil, "c1"))

	hook := &commandCaptureHook{}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	rdb.AddHook(hook)

	// 连接必然失败，但活动榜与全局榜必须在同一条 DEL 里一起失效
	_ = InvalidateLeaderboards(rdb, "c1")
	require.Len(t, hook.commands, 1)
	assert.Equal(t, []interface{}{"del", "leaderboard:campaign:c1", "leaderboard:global"}, hook.commands[0])
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{TotalScore: 90, Status: "passed"},
		{TotalScore: 80, Status: "passed"},
		{TotalScore: 40, Status: "failed"},
	}
	summary := Summarize(results)
	assert.Equal(t, 3, summary.TotalEvaluated)
	assert.Equal(t, 2, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 70.0, summary.AverageScore, 1e-9)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.TotalEvaluated)
	assert.Equal(t, 0.0, empty.AverageScore)
}
