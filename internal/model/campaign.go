package model

import "time"

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignArchived  CampaignStatus = "archived"
)

// Campaign 一次限定在单一部门内的招聘轮次，独占其题集选择。
// TotalCandidates/CompletedCandidates/AverageScore 是反规范化缓存，
// 读路径一律以 StatsService 重算结果为准。
// swagger:model Campaign
type Campaign struct {
	UUIDBase
	Name                 string         `gorm:"size:255;not null" json:"name"`
	Description          string         `gorm:"type:text" json:"description"`
	DepartmentID         string         `gorm:"index;type:varchar(36);not null" json:"departmentId"`
	Department           *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	StartDate            time.Time      `json:"startDate"`
	EndDate              time.Time      `json:"endDate"`
	DurationPerCandidate int            `gorm:"default:0" json:"durationPerCandidate"` // 分钟
	Status               CampaignStatus `gorm:"size:20;default:'draft'" json:"status"`
	QuestionSetIDs       StringList     `gorm:"type:json" json:"questionSetIds"`
	QuestionsPerCandidate int           `gorm:"default:0" json:"questionsPerCandidate"`
	IsRandomized         bool           `gorm:"default:true" json:"isRandomized"`
	PassingScore         int            `gorm:"default:70" json:"passingScore"` // 0-100
	PassingCriteria      string         `gorm:"size:255" json:"passingCriteria,omitempty"`

	TotalCandidates     int     `gorm:"default:0" json:"totalCandidates"`
	CompletedCandidates int     `gorm:"default:0" json:"completedCandidates"`
	AverageScore        float64 `gorm:"default:0" json:"averageScore"`

	CreatedBy string `gorm:"size:100" json:"createdBy"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// AcceptsCandidates 仅 active 状态的活动接受候选人登录与提交
func (c *Campaign) AcceptsCandidates() bool {
	return c.Status == CampaignActive
}
