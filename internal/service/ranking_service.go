package service

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"
	"interview_admin_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RankingService 把已完成的候选人集合聚合为排行榜。
// 排名永远在读路径上重算，不落库；redis 里只放短 TTL 的响应缓存，
// 每次候选人写入都会被丢弃。
type RankingService struct {
	CandidateRepo *repository.CandidateRepository
	CampaignRepo  *repository.CampaignRepository
	Redis         *redis.Client
}

func NewRankingService(candidateRepo *repository.CandidateRepository, campaignRepo *repository.CampaignRepository, rdb *redis.Client) *RankingService {
	return &RankingService{CandidateRepo: candidateRepo, CampaignRepo: campaignRepo, Redis: rdb}
}

// Result 面向管理端展示的派生视图，不持久化
type Result struct {
	CandidateID      string `json:"candidateId"`
	Rank             int    `json:"rank"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	CampaignID       string `json:"campaignId"`
	CampaignName     string `json:"campaignName"`
	PassingScore     int    `json:"passingScore"`
	TotalScore       int    `json:"totalScore"`
	Status           string `json:"status"` // passed | failed
	TimeTakenMinutes int    `json:"timeTakenMinutes"`
	CompletedAt      string `json:"completedAt,omitempty"`
}

type RankingSummary struct {
	TotalEvaluated int     `json:"totalEvaluated"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	AverageScore   float64 `json:"averageScore"`
}

const leaderboardCacheTTL = 30 * time.Second

func leaderboardCacheKey(campaignID string) string {
	if campaignID == "" {
		return "leaderboard:global"
	}
	return "leaderboard:campaign:" + campaignID
}

// InvalidateLeaderboards 丢弃活动榜与全局榜的缓存。
// 任何改变候选人集合或分数的写入之后都必须调用；rdb 为空时是 no-op。
func InvalidateLeaderboards(rdb *redis.Client, campaignID string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(context.Background(), leaderboardCacheKey(campaignID), leaderboardCacheKey("")).Err()
}

// BuildResults 纯排名逻辑：只纳入 status == completed 的候选人，按总分降序
// 稳定排序（同分保持输入顺序），名次严格递增 1..N，同分不共享名次。
// 跨活动排名时每个候选人的通过判定用其自己活动的 passingScore。
func BuildResults(candidates []model.Candidate, campaigns map[string]*model.Campaign) ([]Result, error) {
	completed := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Status == model.CandidateCompleted {
			completed = append(completed, c)
		}
	}

	results := make([]Result, 0, len(completed))
	for _, c := range completed {
		campaign, ok := campaigns[c.CampaignID]
		if !ok || campaign == nil {
			return nil, util.Consistencyf("candidate %s references missing campaign %s", c.ID, c.CampaignID)
		}
		results = append(results, Result{
			CandidateID:      c.ID,
			Name:             strings.TrimSpace(c.FirstName + " " + c.LastName),
			Email:            c.Email,
			CampaignID:       campaign.ID,
			CampaignName:     campaign.Name,
			PassingScore:     campaign.PassingScore,
			TotalScore:       c.Score,
			Status:           PassStatus(c.Score, campaign.PassingScore),
			TimeTakenMinutes: timeTakenMinutes(c.InterviewStartedAt, c.InterviewCompletedAt),
			CompletedAt:      formatCompletedAt(c.InterviewCompletedAt),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

// timeTakenMinutes 两个时间戳齐备才计算，四舍五入到整分钟，下限 0
func timeTakenMinutes(startedAt, completedAt *time.Time) int {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	minutes := int(math.Round(completedAt.Sub(*startedAt).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

func formatCompletedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

type RankingQuery struct {
	CampaignID   string // 空则全局
	StatusFilter string // passed | failed | 空
	Search       string // 姓名/邮箱模糊匹配
}

// Rank 读侧入口：纯读、无副作用、可安全重试。
// 过滤在排名之后进行，名次保留未过滤榜单中的位置。
func (s *RankingService) Rank(q RankingQuery) ([]Result, RankingSummary, error) {
	results, err := s.rankedResults(q.CampaignID)
	if err != nil {
		return nil, RankingSummary{}, err
	}

	summary := Summarize(results)

	if q.StatusFilter != "" || q.Search != "" {
		filtered := make([]Result, 0, len(results))
		search := strings.ToLower(q.Search)
		for _, r := range results {
			if q.StatusFilter != "" && r.Status != q.StatusFilter {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(r.Name), search) &&
				!strings.Contains(strings.ToLower(r.Email), search) {
				continue
			}
			filtered = append(filtered, r)
		}
		results = filtered
	}

	return results, summary, nil
}

func Summarize(results []Result) RankingSummary {
	summary := RankingSummary{TotalEvaluated: len(results)}
	sum := 0
	for _, r := range results {
		if r.Status == "passed" {
			summary.Passed++
		} else {
			summary.Failed++
		}
		sum += r.TotalScore
	}
	if len(results) > 0 {
		summary.AverageScore = float64(sum) / float64(len(results))
	}
	return summary
}

func (s *RankingService) rankedResults(campaignID string) ([]Result, error) {
	ctx := context.Background()
	cacheKey := leaderboardCacheKey(campaignID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var results []Result
			if json.Unmarshal(cached, &results) == nil {
				return results, nil
			}
		}
	}

	var candidates []model.Candidate
	var err error
	if campaignID == "" {
		candidates, err = s.CandidateRepo.ListAll()
	} else {
		candidates, err = s.CandidateRepo.ListByCampaign(campaignID)
	}
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignIndex()
	if err != nil {
		return nil, err
	}

	results, err := BuildResults(candidates, campaigns)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(results); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}
	return results, nil
}

func (s *RankingService) campaignIndex() (map[string]*model.Campaign, error) {
	campaigns, err := s.CampaignRepo.ListAll()
	if err != nil {
		return nil, err
	}
	index := make(map[string]*model.Campaign, len(campaigns))
	for i := range campaigns {
		index[campaigns[i].ID] = &campaigns[i]
	}
	return index, nil
}
