package service

import (
	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
)

type DashboardService struct {
	DeptRepo      *repository.DepartmentRepository
	QuestionRepo  *repository.QuestionRepository
	CampaignRepo  *repository.CampaignRepository
	CandidateRepo *repository.CandidateRepository
	Stats         *StatsService
	Ranking       *RankingService
}

func NewDashboardService(deptRepo *repository.DepartmentRepository, questionRepo *repository.QuestionRepository, campaignRepo *repository.CampaignRepository, candidateRepo *repository.CandidateRepository, stats *StatsService, ranking *RankingService) *DashboardService {
	return &DashboardService{
		DeptRepo:      deptRepo,
		QuestionRepo:  questionRepo,
		CampaignRepo:  campaignRepo,
		CandidateRepo: candidateRepo,
		Stats:         stats,
		Ranking:       ranking,
	}
}

type CampaignOverview struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Status       model.CampaignStatus `json:"status"`
	PassingScore int                  `json:"passingScore"`
	Stats        CampaignStats        `json:"stats"`
}

type RecentCompletion struct {
	CandidateID  string `json:"candidateId"`
	Name         string `json:"name"`
	CampaignName string `json:"campaignName"`
	Score        int    `json:"score"`
	CompletedAt  string `json:"completedAt,omitempty"`
}

type Dashboard struct {
	TotalDepartments  int64              `json:"totalDepartments"`
	TotalQuestions    int64              `json:"totalQuestions"`
	TotalCampaigns    int64              `json:"totalCampaigns"`
	TotalCandidates   int64              `json:"totalCandidates"`
	AverageScore      float64            `json:"averageScore"`
	Campaigns         []CampaignOverview `json:"campaigns"`
	RecentCompletions []RecentCompletion `json:"recentCompletions"`
}

// GetDashboard 管理端总览，所有计数与均分在读路径上现算
func (s *DashboardService) GetDashboard() (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.TotalDepartments, err = s.DeptRepo.Count(); err != nil {
		return nil, err
	}
	if d.TotalQuestions, err = s.QuestionRepo.Count(); err != nil {
		return nil, err
	}
	if d.TotalCampaigns, err = s.CampaignRepo.Count(); err != nil {
		return nil, err
	}
	if d.TotalCandidates, err = s.CandidateRepo.Count(); err != nil {
		return nil, err
	}

	_, summary, err := s.Ranking.Rank(RankingQuery{})
	if err != nil {
		return nil, err
	}
	d.AverageScore = summary.AverageScore

	campaigns, err := s.CampaignRepo.ListAll()
	if err != nil {
		return nil, err
	}
	d.Campaigns = make([]CampaignOverview, 0, len(campaigns))
	for _, c := range campaigns {
		stats, err := s.Stats.StatsFor(c.ID)
		if err != nil {
			return nil, err
		}
		d.Campaigns = append(d.Campaigns, CampaignOverview{
			ID:           c.ID,
			Name:         c.Name,
			Status:       c.Status,
			PassingScore: c.PassingScore,
			Stats:        stats,
		})
	}

	recent, err := s.CandidateRepo.ListRecentCompleted(5)
	if err != nil {
		return nil, err
	}
	d.RecentCompletions = make([]RecentCompletion, 0, len(recent))
	for _, c := range recent {
		campaignName := ""
		if c.Campaign != nil {
			campaignName = c.Campaign.Name
		}
		d.RecentCompletions = append(d.RecentCompletions, RecentCompletion{
			CandidateID:  c.ID,
			Name:         c.FirstName + " " + c.LastName,
			CampaignName: campaignName,
			Score:        c.Score,
			CompletedAt:  formatCompletedAt(c.InterviewCompletedAt),
		})
	}

	return d, nil
}
