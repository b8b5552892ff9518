package service

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawQuestionSetValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := model.StringList{"q1", "q2", "q3"}

	tests := []struct {
		name  string
		pool  model.StringList
		count int
	}{
		{"empty pool", model.StringList{}, 1},
		{"zero per candidate", pool, 0},
		{"negative per candidate", pool, -1},
		{"more than pool size", pool, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DrawQuestionSet(tt.pool, tt.count, true, rng)
			require.Error(t, err)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestDrawQuestionSetSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := model.StringList{"q1", "q2", "q3", "q4", "q5"}

	picked, err := DrawQuestionSet(pool, 3, false, rng)
	require.NoError(t, err)
	// 非随机模式按题集插入顺序取前 n 个
	assert.Equal(t, model.StringList{"q1", "q2", "q3"}, picked)
}

func TestDrawQuestionSetRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := model.StringList{"q1", "q2", "q3", "q4", "q5"}

	for i := 0; i < 50; i++ {
		picked, err := DrawQuestionSet(pool, 3, true, rng)
		require.NoError(t, err)
		require.Len(t, picked, 3)

		seen := map[string]bool{}
		for _, id := range picked {
			assert.Contains(t, []string(pool), id)
			assert.False(t, seen[id], "question %s drawn twice", id)
			seen[id] = true
		}
	}
}

func TestDrawQuestionSetFullPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pool := model.StringList{"q1", "q2", "q3"}

	picked, err := DrawQuestionSet(pool, 3, true, rng)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string(pool), []string(picked))
}

// 创建候选人与首次登录取题可能同时抽题，共享的随机源必须串行化
func TestDrawConcurrent(t *testing.T) {
	svc := NewAssignmentService(nil, 1)
	campaign := campaignFixture("c1", 70)
	campaign.QuestionSetIDs = model.StringList{"q1", "q2", "q3", "q4", "q5"}
	campaign.QuestionsPerCandidate = 3
	campaign.IsRandomized = true

	var wg sync.WaitGroup
	errs := make(chan error, 8*100)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				picked, err := svc.Draw(campaign)
				if err != nil {
					errs <- err
					return
				}
				if len(picked) != 3 {
					errs <- util.Validationf("drew %d questions, want 3", len(picked))
					return
				}
				seen := map[string]bool{}
				for _, id := range picked {
					if seen[id] {
						errs <- util.Validationf("question %s drawn twice", id)
						return
					}
					seen[id] = true
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestAssignOnceReturnsExistingAssignment(t *testing.T) {
	svc := NewAssignmentService(nil, 1)
	campaign := campaignFixture("c1", 70)
	campaign.QuestionSetIDs = model.StringList{"q1", "q2", "q3"}
	campaign.QuestionsPerCandidate = 2

	candidate := candidateFixture("a", "c1", model.CandidateInProgress, 0)
	candidate.AssignedQuestions = model.StringList{"q2", "q1"}

	got, err := svc.AssignOnce(campaign, &candidate)
	require.NoError(t, err)
	// 已有分配原样返回，不触发重抽
	assert.Equal(t, model.StringList{"q2", "q1"}, got)
}

func TestAssignOnceLockedAfterInterviewStart(t *testing.T) {
	svc := NewAssignmentService(nil, 1)
	campaign := campaignFixture("c1", 70)
	campaign.QuestionSetIDs = model.StringList{"q1", "q2", "q3"}
	campaign.QuestionsPerCandidate = 2

	started := time.Now()
	candidate := candidateFixture("a", "c1", model.CandidateInProgress, 0)
	candidate.InterviewStartedAt = &started

	_, err := svc.AssignOnce(campaign, &candidate)
	assert.ErrorIs(t, err, util.ErrAssignmentLocked)
}
