package model

import (
	"encoding/json"
	"time"
)

// CandidateStatus 全系统唯一的候选人状态枚举
type CandidateStatus string

const (
	CandidateNotStarted CandidateStatus = "not_started"
	CandidateInvited    CandidateStatus = "invited"
	CandidateInProgress CandidateStatus = "in_progress"
	CandidateCompleted  CandidateStatus = "completed"
)

// Education 报名时填写的教育背景
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationYear int    `json:"graduationYear"`
	GPA            string `json:"gpa,omitempty"`
}

// Candidate 候选人对某一活动的参与记录。
// AssignedQuestions 在创建/首次登录时写入一次，面试开始后锁定；
// Answers/Score 仅由提交流程整体更新，Rank 永远不落库。
// swagger:model Candidate
type Candidate struct {
	UUIDBase
	FirstName             string          `gorm:"size:100;not null" json:"firstName"`
	LastName              string          `gorm:"size:100;not null" json:"lastName"`
	Email                 string          `gorm:"size:255;index;not null" json:"email"`
	Phone                 string          `gorm:"size:50" json:"phone,omitempty"`
	EducationJSON         json.RawMessage `gorm:"column:education;type:json" json:"education"`
	PreferredDepartmentID string          `gorm:"type:varchar(36)" json:"preferredDepartmentId"`
	CampaignID            string          `gorm:"index;type:varchar(36);not null" json:"campaignId"`
	Campaign              *Campaign       `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Status                CandidateStatus `gorm:"size:20;default:'invited'" json:"status"`
	AssignedQuestions     StringList      `gorm:"type:json" json:"assignedQuestions"`
	Answers               AnswerMap       `gorm:"type:json" json:"answers"`
	Score                 int             `gorm:"default:0" json:"score"`
	TempPassword          string          `gorm:"size:64" json:"-"`
	InterviewStartedAt    *time.Time      `json:"interviewStartedAt,omitempty"`
	InterviewCompletedAt  *time.Time      `json:"interviewCompletedAt,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// NormalizeStatus 旧数据可能带有 "in progress" / 空值等历史写法，读入时归一
func NormalizeStatus(s string) CandidateStatus {
	switch s {
	case "completed":
		return CandidateCompleted
	case "in_progress", "in progress":
		return CandidateInProgress
	case "not_started":
		return CandidateNotStarted
	default:
		return CandidateInvited
	}
}
