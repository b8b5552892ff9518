package service

import (
	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
)

// StatsService 活动维度的只读聚合。所有读路径都走这里重算，
// Campaign 表里存的计数只是反规范化缓存，永远不作为输出来源。
type StatsService struct {
	CandidateRepo *repository.CandidateRepository
	CampaignRepo  *repository.CampaignRepository
}

func NewStatsService(candidateRepo *repository.CandidateRepository, campaignRepo *repository.CampaignRepository) *StatsService {
	return &StatsService{CandidateRepo: candidateRepo, CampaignRepo: campaignRepo}
}

type CampaignStats struct {
	TotalCandidates     int     `json:"totalCandidates"`
	CompletedCandidates int     `json:"completedCandidates"`
	AverageScore        float64 `json:"averageScore"`
}

// ComputeCampaignStats 纯聚合：无已完成候选人时平均分为 0，不产生 NaN
func ComputeCampaignStats(campaignID string, candidates []model.Candidate) CampaignStats {
	var stats CampaignStats
	sum := 0
	for _, c := range candidates {
		if c.CampaignID != campaignID {
			continue
		}
		stats.TotalCandidates++
		if c.Status == model.CandidateCompleted {
			stats.CompletedCandidates++
			sum += c.Score
		}
	}
	if stats.CompletedCandidates > 0 {
		stats.AverageScore = float64(sum) / float64(stats.CompletedCandidates)
	}
	return stats
}

func (s *StatsService) StatsFor(campaignID string) (CampaignStats, error) {
	candidates, err := s.CandidateRepo.ListByCampaign(campaignID)
	if err != nil {
		return CampaignStats{}, err
	}
	return ComputeCampaignStats(campaignID, candidates), nil
}

// RefreshCampaignCache 把重算结果回写到 Campaign 的缓存列，供外部索引用
func (s *StatsService) RefreshCampaignCache(campaignID string) error {
	stats, err := s.StatsFor(campaignID)
	if err != nil {
		return err
	}
	return s.CampaignRepo.UpdateCachedStats(campaignID, stats.TotalCandidates, stats.CompletedCandidates, stats.AverageScore)
}
