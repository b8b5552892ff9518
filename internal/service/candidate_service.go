package service

import (
	"encoding/json"
	"errors"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"
	"interview_admin_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CandidateService struct {
	Repo         *repository.CandidateRepository
	CampaignRepo *repository.CampaignRepository
	QuestionRepo *repository.QuestionRepository
	Assignment   *AssignmentService
	Stats        *StatsService
	Redis        *redis.Client
}

func NewCandidateService(repo *repository.CandidateRepository, campaignRepo *repository.CampaignRepository, questionRepo *repository.QuestionRepository, assignment *AssignmentService, stats *StatsService, rdb *redis.Client) *CandidateService {
	return &CandidateService{
		Repo:         repo,
		CampaignRepo: campaignRepo,
		QuestionRepo: questionRepo,
		Assignment:   assignment,
		Stats:        stats,
		Redis:        rdb,
	}
}

type CandidateRequest struct {
	FirstName             string          `json:"firstName" binding:"required"`
	LastName              string          `json:"lastName" binding:"required"`
	Email                 string          `json:"email" binding:"required,email"`
	Phone                 string          `json:"phone"`
	Education             model.Education `json:"education"`
	PreferredDepartmentID string          `json:"preferredDepartmentId"`
	CampaignID            string          `json:"campaignId" binding:"required"`
}

// CandidateCreated 创建响应，临时口令只在这里返回一次
type CandidateCreated struct {
	Candidate    *model.Candidate `json:"candidate"`
	TempPassword string           `json:"tempPassword"`
}

// Create 添加候选人：生成临时口令并立刻抽取题目集合随记录一起写入，
// 抽取结果此后不再重算（随机种子不持久化，重算结果不可复现）
func (s *CandidateService) Create(req CandidateRequest) (*CandidateCreated, error) {
	campaign, err := s.CampaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("campaign %s", req.CampaignID)
		}
		return nil, err
	}

	assigned, err := s.Assignment.Draw(campaign)
	if err != nil {
		return nil, err
	}

	educationJSON, err := json.Marshal(req.Education)
	if err != nil {
		return nil, util.Validationf("education payload is not serializable")
	}

	tempPassword := util.GenerateTempPassword(8)
	c := &model.Candidate{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		EducationJSON:         educationJSON,
		PreferredDepartmentID: req.PreferredDepartmentID,
		CampaignID:            req.CampaignID,
		Status:                model.CandidateInvited,
		AssignedQuestions:     assigned,
		Answers:               model.AnswerMap{},
		TempPassword:          tempPassword,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}

	if err := s.Stats.RefreshCampaignCache(req.CampaignID); err != nil {
		logger.Log.Warn("campaign stats cache refresh failed",
			zap.String("campaignId", req.CampaignID), zap.Error(err))
	}

	return &CandidateCreated{Candidate: c, TempPassword: tempPassword}, nil
}

func (s *CandidateService) Get(id string) (*model.Candidate, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("candidate %s", id)
		}
		return nil, err
	}
	return c, nil
}

func (s *CandidateService) List(page, limit int) ([]model.Candidate, int64, error) {
	return s.Repo.ListPaged(page, limit)
}

// Delete 只有管理员显式删除，系统不做任何隐式删除。
// 已完成的候选人可能挂在缓存的排行榜里，删除后同样要丢弃榜单缓存。
func (s *CandidateService) Delete(id string) error {
	c, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := InvalidateLeaderboards(s.Redis, c.CampaignID); err != nil {
		logger.Log.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
	if err := s.Stats.RefreshCampaignCache(c.CampaignID); err != nil {
		logger.Log.Warn("campaign stats cache refresh failed",
			zap.String("campaignId", c.CampaignID), zap.Error(err))
	}
	return nil
}

// ResetPassword 轮换临时口令，其余字段不动
func (s *CandidateService) ResetPassword(id string) (string, error) {
	if _, err := s.Get(id); err != nil {
		return "", err
	}
	tempPassword := util.GenerateTempPassword(8)
	if err := s.Repo.UpdateTempPassword(id, tempPassword); err != nil {
		return "", err
	}
	return tempPassword, nil
}

// CandidateQuestion 发给候选人的题面，不含正确答案与评分细则
type CandidateQuestion struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	AnswerType  model.AnswerType `json:"answerType"`
	Marks       int              `json:"marks"`
	Options     model.StringList `json:"options,omitempty"`
	CodeTemplate string          `json:"codeTemplate,omitempty"`
	FileTypes   model.StringList `json:"fileTypes,omitempty"`
	RatingScale int              `json:"ratingScale,omitempty"`
}

type AssignedQuestionSet struct {
	Campaign  CampaignBrief       `json:"campaign"`
	Questions []CandidateQuestion `json:"questions"`
	Total     int                 `json:"totalQuestions"`
}

type CampaignBrief struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	DurationPerCandidate  int    `json:"durationPerCandidate"`
	QuestionsPerCandidate int    `json:"questionsPerCandidate"`
	PassingScore          int    `json:"passingScore"`
}

// AssignedQuestions 候选人取题：必要时完成首次分配，并把状态推进到 in_progress。
// 返回顺序严格等于分配时确定的顺序。
func (s *CandidateService) AssignedQuestions(candidateID string) (*AssignedQuestionSet, error) {
	candidate, err := s.Get(candidateID)
	if err != nil {
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

	assigned, err := s.Assignment.AssignOnce(campaign, candidate)
	if err != nil {
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByIDs(assigned)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	out := make([]CandidateQuestion, 0, len(assigned))
	for _, id := range assigned {
		q, ok := byID[id]
		if !ok {
			return nil, util.Consistencyf("assigned question %s does not exist", id)
		}
		out = append(out, CandidateQuestion{
			ID:           q.ID,
			Title:        q.Title,
			Description:  q.Description,
			AnswerType:   q.AnswerType,
			Marks:        q.Marks,
			Options:      q.Options,
			CodeTemplate: q.CodeTemplate,
			FileTypes:    q.FileTypes,
			RatingScale:  q.RatingScale,
		})
	}

	if candidate.Status == model.CandidateInvited || candidate.Status == model.CandidateNotStarted {
		if err := s.Repo.SetStatus(candidateID, model.CandidateInProgress); err != nil {
			logger.Log.Warn("candidate status transition failed",
				zap.String("candidateId", candidateID), zap.Error(err))
		}
	}

	return &AssignedQuestionSet{
		Campaign: CampaignBrief{
			ID:                    campaign.ID,
			Name:                  campaign.Name,
			Description:           campaign.Description,
			DurationPerCandidate:  campaign.DurationPerCandidate,
			QuestionsPerCandidate: campaign.QuestionsPerCandidate,
			PassingScore:          campaign.PassingScore,
		},
		Questions: out,
		Total:     len(out),
	}, nil
}
