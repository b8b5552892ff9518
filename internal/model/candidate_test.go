package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want CandidateStatus
	}{
		{"completed", CandidateCompleted},
		{"in_progress", CandidateInProgress},
		{"in progress", CandidateInProgress}, // 历史写法
		{"not_started", CandidateNotStarted},
		{"invited", CandidateInvited},
		{"", CandidateInvited},
		{"garbage", CandidateInvited},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.in), "input %q", tt.in)
	}
}
