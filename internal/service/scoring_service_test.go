package service

import (
	"encoding/json"
	"testing"

	"interview_admin_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func answers(ids ...string) model.AnswerMap {
	m := model.AnswerMap{}
	for _, id := range ids {
		m[id] = json.RawMessage(`"x"`)
	}
	return m
}

func floatPtr(f float64) *float64 { return &f }

func TestComputeScore(t *testing.T) {
	assigned := model.StringList{"q1", "q2", "q3", "q4", "q5"}

	tests := []struct {
		name        string
		assigned    model.StringList
		answers     model.AnswerMap
		clientScore *float64
		want        int
	}{
		{
			name:     "3 of 5 answered",
			assigned: assigned,
			answers:  answers("q1", "q2", "q3"),
			want:     60,
		},
		{
			name:     "all answered",
			assigned: assigned,
			answers:  answers("q1", "q2", "q3", "q4", "q5"),
			want:     100,
		},
		{
			name:     "nothing answered",
			assigned: assigned,
			answers:  answers(),
			want:     0,
		},
		{
			name:     "answers to unassigned questions are ignored",
			assigned: assigned,
			answers:  answers("q1", "q9", "q10"),
			want:     20,
		},
		{
			name:     "empty assignment falls back to fixed denominator",
			assigned: model.StringList{},
			answers:  answers("q1", "q2"),
			want:     0, // 已答题不在（空的）分配集合里
		},
		{
			name:        "trusted client score wins over completion ratio",
			assigned:    assigned,
			answers:     answers("q1"),
			clientScore: floatPtr(87.4),
			want:        87,
		},
		{
			name:        "client score rounds half up",
			assigned:    assigned,
			answers:     answers(),
			clientScore: floatPtr(87.5),
			want:        88,
		},
		{
			name:        "client score clamped to upper bound",
			assigned:    assigned,
			answers:     answers(),
			clientScore: floatPtr(150),
			want:        100,
		},
		{
			name:        "client score clamped to lower bound",
			assigned:    assigned,
			answers:     answers(),
			clientScore: floatPtr(-3),
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScore(tt.assigned, tt.answers, tt.clientScore)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeScoreIsDeterministic(t *testing.T) {
	assigned := model.StringList{"q1", "q2", "q3"}
	ans := answers("q1", "q3")
	first := ComputeScore(assigned, ans, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeScore(assigned, ans, nil))
	}
}

func TestParseSubmissionTime(t *testing.T) {
	got, err := parseSubmissionTime("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseSubmissionTime("2026-03-01T10:30:00Z")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, 2026, got.Year())
	}

	_, err = parseSubmissionTime("March 1st")
	assert.Error(t, err)
}

func TestPassStatus(t *testing.T) {
	assert.Equal(t, "passed", PassStatus(70, 70))
	assert.Equal(t, "passed", PassStatus(100, 70))
	assert.Equal(t, "failed", PassStatus(69, 70))
	assert.Equal(t, "passed", PassStatus(0, 0))
}
