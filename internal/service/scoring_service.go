package service

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"
	"interview_admin_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScoringService 把候选人的原始提交变成分数与通过状态。
// 两条路径：外部评分器（如代码沙箱）给出的可信分数直接采用；
// 否则退化为按作答完成率的粗略近似，这不是真正的判卷。
type ScoringService struct {
	CandidateRepo *repository.CandidateRepository
	CampaignRepo  *repository.CampaignRepository
	Stats         *StatsService
	Redis         *redis.Client
}

func NewScoringService(candidateRepo *repository.CandidateRepository, campaignRepo *repository.CampaignRepository, stats *StatsService, rdb *redis.Client) *ScoringService {
	return &ScoringService{
		CandidateRepo: candidateRepo,
		CampaignRepo:  campaignRepo,
		Stats:         stats,
		Redis:         rdb,
	}
}

type SubmissionRequest struct {
	Answers              map[string]json.RawMessage `json:"answers" binding:"required"`
	InterviewStartedAt   string                     `json:"interviewStartedAt"`
	InterviewCompletedAt string                     `json:"interviewCompletedAt"`
	Score                *float64                   `json:"score"` // 外部评分器结果，可信
}

type SubmissionResult struct {
	CandidateID string `json:"candidateId"`
	Status      string `json:"status"` // passed | failed
	Score       int    `json:"score"`
}

// ComputeScore 纯打分逻辑。clientScore 非空时钳制到 [0,100] 直接使用；
// 否则 score = round(100 × 已答题数 / 分母)，分母为已分配题数，为零时用兜底常数。
func ComputeScore(assigned model.StringList, answers model.AnswerMap, clientScore *float64) int {
	if clientScore != nil {
		s := *clientScore
		if s < 0 {
			s = 0
		}
		if s > 100 {
			s = 100
		}
		return int(math.Round(s))
	}

	answered := 0
	for _, qid := range assigned {
		if _, ok := answers[qid]; ok {
			answered++
		}
	}

	denominator := len(assigned)
	if denominator == 0 {
		denominator = util.FallbackQuestionCount
	}
	return int(math.Round(100 * float64(answered) / float64(denominator)))
}

// PassStatus score ≥ passingScore 即通过
func PassStatus(score, passingScore int) string {
	if score >= passingScore {
		return "passed"
	}
	return "failed"
}

// Submit 评分并落库。重复提交是幂等覆盖：answers/score/状态/时间戳整体替换，
// 且作为单条 UPDATE 原子提交，网络重试不会产生撕裂写。
func (s *ScoringService) Submit(candidateID string, req SubmissionRequest) (*SubmissionResult, error) {
	if req.Answers == nil {
		return nil, util.Validationf("answers must be a mapping of questionId to answer payload")
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 100) {
		return nil, util.Validationf("score must be within [0,100], got %v", *req.Score)
	}

	candidate, err := s.CandidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("candidate %s", candidateID)
		}
		return nil, err
	}

	campaign, err := s.CampaignRepo.FindByID(candidate.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.Consistencyf("candidate %s references missing campaign %s", candidateID, candidate.CampaignID)
		}
		return nil, err
	}
	if !campaign.AcceptsCandidates() {
		return nil, util.ErrCampaignNotActive
	}

	startedAt, err := parseSubmissionTime(req.InterviewStartedAt)
	if err != nil {
		return nil, err
	}
	completedAt, err := parseSubmissionTime(req.InterviewCompletedAt)
	if err != nil {
		return nil, err
	}

	score := ComputeScore(candidate.AssignedQuestions, model.AnswerMap(req.Answers), req.Score)

	if err := s.CandidateRepo.ApplySubmission(candidateID, model.AnswerMap(req.Answers), score, startedAt, completedAt); err != nil {
		return nil, err
	}

	s.invalidateReadCaches(campaign.ID)

	return &SubmissionResult{
		CandidateID: candidateID,
		Status:      PassStatus(score, campaign.PassingScore),
		Score:       score,
	}, nil
}

// 时间戳缺省不报错（耗时按 0 处理），给了就必须可解析
func parseSubmissionTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, util.Validationf("timestamp %q is not valid ISO8601", value)
	}
	return &t, nil
}

// invalidateReadCaches 候选人写入后丢弃排行榜缓存并回写活动计数缓存。
// 缓存失败只记日志：排名与统计本来就在读路径上重算。
func (s *ScoringService) invalidateReadCaches(campaignID string) {
	if err := InvalidateLeaderboards(s.Redis, campaignID); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
	if s.Stats != nil {
		if err := s.Stats.RefreshCampaignCache(campaignID); err != nil {
			logger.Log.Warn("campaign stats cache refresh failed",
				zap.String("campaignId", campaignID), zap.Error(err))
		}
	}
}
