package service

import (
	"testing"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestionSetInputErrors(t *testing.T) {
	svc := &CampaignService{}

	tests := []struct {
		name  string
		ids   []string
		count int
	}{
		{"empty question set", nil, 1},
		{"zero per candidate", []string{"q1", "q2"}, 0},
		{"count exceeds set size", []string{"q1", "q2"}, 3},
		{"duplicate question", []string{"q1", "q1"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateQuestionSet("d1", tt.ids, tt.count)
			require.Error(t, err)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &CampaignService{}
	_, err := svc.UpdateStatus("c1", model.CampaignStatus("paused"))
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrValidation)
}
