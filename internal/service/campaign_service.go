package service

import (
	"errors"
	"time"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"

	"gorm.io/gorm"
)

type CampaignService struct {
	Repo         *repository.CampaignRepository
	QuestionRepo *repository.QuestionRepository
	Stats        *StatsService
}

func NewCampaignService(repo *repository.CampaignRepository, questionRepo *repository.QuestionRepository, stats *StatsService) *CampaignService {
	return &CampaignService{Repo: repo, QuestionRepo: questionRepo, Stats: stats}
}

type CampaignRequest struct {
	Name                  string   `json:"name" binding:"required"`
	Description           string   `json:"description"`
	DepartmentID          string   `json:"departmentId" binding:"required"`
	StartDate             string   `json:"startDate" binding:"required"`
	EndDate               string   `json:"endDate" binding:"required"`
	DurationPerCandidate  int      `json:"durationPerCandidate"`
	QuestionSetIDs        []string `json:"questionSetIds" binding:"required"`
	QuestionsPerCandidate int      `json:"questionsPerCandidate" binding:"required"`
	IsRandomized          *bool    `json:"isRandomized"`
	PassingScore          int      `json:"passingScore"`
	PassingCriteria       string   `json:"passingCriteria"`
}

// ValidateQuestionSet 题集一致性校验：
//   - 选择参数越界是输入错误（ValidationError）
//   - 题目缺失或跨部门是数据完整性问题（ConsistencyError），活动不得进入 active
func (s *CampaignService) ValidateQuestionSet(departmentID string, questionSetIDs []string, questionsPerCandidate int) error {
	if len(questionSetIDs) == 0 {
		return util.Validationf("campaign question set is empty")
	}
	if questionsPerCandidate < 1 || questionsPerCandidate > len(questionSetIDs) {
		return util.Validationf("questionsPerCandidate must be between 1 and %d, got %d",
			len(questionSetIDs), questionsPerCandidate)
	}

	seen := make(map[string]bool, len(questionSetIDs))
	for _, id := range questionSetIDs {
		if seen[id] {
			return util.Validationf("duplicate question %s in question set", id)
		}
		seen[id] = true
	}

	questions, err := s.QuestionRepo.ListByIDs(questionSetIDs)
	if err != nil {
		return err
	}
	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	for _, id := range questionSetIDs {
		q, ok := byID[id]
		if !ok {
			return util.Consistencyf("question %s in question set does not exist", id)
		}
		if q.DepartmentID != departmentID {
			return util.Consistencyf("question %s belongs to department %s, not campaign department %s",
				id, q.DepartmentID, departmentID)
		}
	}
	return nil
}

func (s *CampaignService) Create(req CampaignRequest, createdBy string) (*model.Campaign, error) {
	if req.PassingScore < 0 || req.PassingScore > 100 {
		return nil, util.Validationf("passingScore must be within [0,100], got %d", req.PassingScore)
	}
	if err := s.ValidateQuestionSet(req.DepartmentID, req.QuestionSetIDs, req.QuestionsPerCandidate); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(util.DateFormat, req.StartDate)
	if err != nil {
		return nil, util.Validationf("startDate %q is not a valid date", req.StartDate)
	}
	endDate, err := time.Parse(util.DateFormat, req.EndDate)
	if err != nil {
		return nil, util.Validationf("endDate %q is not a valid date", req.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, util.Validationf("endDate is before startDate")
	}

	isRandomized := true
	if req.IsRandomized != nil {
		isRandomized = *req.IsRandomized
	}

	c := &model.Campaign{
		Name:                  req.Name,
		Description:           req.Description,
		DepartmentID:          req.DepartmentID,
		StartDate:             startDate,
		EndDate:               endDate,
		DurationPerCandidate:  req.DurationPerCandidate,
		Status:                model.CampaignDraft,
		QuestionSetIDs:        model.StringList(req.QuestionSetIDs),
		QuestionsPerCandidate: req.QuestionsPerCandidate,
		IsRandomized:          isRandomized,
		PassingScore:          req.PassingScore,
		PassingCriteria:       req.PassingCriteria,
		CreatedBy:             createdBy,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Get(id string) (*model.Campaign, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("campaign %s", id)
		}
		return nil, err
	}
	return c, nil
}

// GetWithStats 详情读路径：计数一律现算，覆盖存储的缓存值
func (s *CampaignService) GetWithStats(id string) (*model.Campaign, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	stats, err := s.Stats.StatsFor(id)
	if err != nil {
		return nil, err
	}
	c.TotalCandidates = stats.TotalCandidates
	c.CompletedCandidates = stats.CompletedCandidates
	c.AverageScore = stats.AverageScore
	return c, nil
}

func (s *CampaignService) List(page, limit int) ([]model.Campaign, int64, error) {
	campaigns, total, err := s.Repo.List(page, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range campaigns {
		stats, err := s.Stats.StatsFor(campaigns[i].ID)
		if err != nil {
			return nil, 0, err
		}
		campaigns[i].TotalCandidates = stats.TotalCandidates
		campaigns[i].CompletedCandidates = stats.CompletedCandidates
		campaigns[i].AverageScore = stats.AverageScore
	}
	return campaigns, total, nil
}

func (s *CampaignService) Update(id string, req CampaignRequest) (*model.Campaign, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.PassingScore < 0 || req.PassingScore > 100 {
		return nil, util.Validationf("passingScore must be within [0,100], got %d", req.PassingScore)
	}
	if err := s.ValidateQuestionSet(req.DepartmentID, req.QuestionSetIDs, req.QuestionsPerCandidate); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(util.DateFormat, req.StartDate)
	if err != nil {
		return nil, util.Validationf("startDate %q is not a valid date", req.StartDate)
	}
	endDate, err := time.Parse(util.DateFormat, req.EndDate)
	if err != nil {
		return nil, util.Validationf("endDate %q is not a valid date", req.EndDate)
	}

	c.Name = req.Name
	c.Description = req.Description
	c.DepartmentID = req.DepartmentID
	c.StartDate = startDate
	c.EndDate = endDate
	c.DurationPerCandidate = req.DurationPerCandidate
	c.QuestionSetIDs = model.StringList(req.QuestionSetIDs)
	c.QuestionsPerCandidate = req.QuestionsPerCandidate
	if req.IsRandomized != nil {
		c.IsRandomized = *req.IsRandomized
	}
	c.PassingScore = req.PassingScore
	c.PassingCriteria = req.PassingCriteria

	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus 进入 active 前重跑题集一致性校验，坏数据直接拦下
func (s *CampaignService) UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error) {
	switch status {
	case model.CampaignDraft, model.CampaignActive, model.CampaignCompleted, model.CampaignArchived:
	default:
		return nil, util.Validationf("unknown campaign status %q", status)
	}

	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if status == model.CampaignActive {
		if err := s.ValidateQuestionSet(c.DepartmentID, c.QuestionSetIDs, c.QuestionsPerCandidate); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	c.Status = status
	return c, nil
}

func (s *CampaignService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
