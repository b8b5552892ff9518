package service

import (
	"testing"

	"interview_admin_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeCampaignStats(t *testing.T) {
	tests := []struct {
		name       string
		candidates []model.Candidate
		want       CampaignStats
	}{
		{
			name:       "no candidates",
			candidates: nil,
			want:       CampaignStats{},
		},
		{
			name: "no completed candidates yields zero average",
			candidates: []model.Candidate{
				candidateFixture("a", "c1", model.CandidateInvited, 0),
				candidateFixture("b", "c1", model.CandidateInProgress, 0),
			},
			want: CampaignStats{TotalCandidates: 2},
		},
		{
			name: "average over completed only",
			candidates: []model.Candidate{
				candidateFixture("a", "c1", model.CandidateCompleted, 80),
				candidateFixture("b", "c1", model.CandidateCompleted, 60),
				candidateFixture("c", "c1", model.CandidateInProgress, 99),
			},
			want: CampaignStats{TotalCandidates: 3, CompletedCandidates: 2, AverageScore: 70},
		},
		{
			name: "candidates from other campaigns ignored",
			candidates: []model.Candidate{
				candidateFixture("a", "c1", model.CandidateCompleted, 80),
				candidateFixture("b", "other", model.CandidateCompleted, 20),
			},
			want: CampaignStats{TotalCandidates: 1, CompletedCandidates: 1, AverageScore: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCampaignStats("c1", tt.candidates)
			assert.Equal(t, tt.want, got)
		})
	}
}
