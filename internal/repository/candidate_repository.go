package repository

import (
	"time"

	"interview_admin_backend/internal/model"

	"gorm.io/gorm"
)

type CandidateRepository struct {
	DB *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{DB: db}
}

func (r *CandidateRepository) Create(c *model.Candidate) error {
	return r.DB.Create(c).Error
}

func (r *CandidateRepository) FindByID(id string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.DB.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CandidateRepository) FindByEmailAndPassword(email, tempPassword string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.DB.Preload("Campaign").
		Where("email = ? AND temp_password = ?", email, tempPassword).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByCampaign 排序固定为 created_at asc, id asc，保证排名 stable tie-break 跨读取可复现
func (r *CandidateRepository) ListByCampaign(campaignID string) ([]model.Candidate, error) {
	var cs []model.Candidate
	err := r.DB.Where("campaign_id = ?", campaignID).
		Order("created_at asc, id asc").Find(&cs).Error
	return cs, err
}

func (r *CandidateRepository) ListAll() ([]model.Candidate, error) {
	var cs []model.Candidate
	err := r.DB.Order("created_at asc, id asc").Find(&cs).Error
	return cs, err
}

func (r *CandidateRepository) ListPaged(page, limit int) ([]model.Candidate, int64, error) {
	var cs []model.Candidate
	var total int64
	if err := r.DB.Model(&model.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := r.DB.Preload("Campaign").Order("created_at desc").
		Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

func (r *CandidateRepository) Update(c *model.Candidate) error {
	return r.DB.Save(c).Error
}

func (r *CandidateRepository) Delete(id string) error {
	return r.DB.Delete(&model.Candidate{}, "id = ?", id).Error
}

func (r *CandidateRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Candidate{}).Count(&total).Error
	return total, err
}

// AssignQuestionsIfEmpty 条件更新：仅当题目尚未分配时写入，返回是否真正写入。
// 两个并发登录同时走到这里时只有一个会成功，败者重新读库拿到胜者的分配结果。
func (r *CandidateRepository) AssignQuestionsIfEmpty(id string, questionIDs model.StringList) (bool, error) {
	res := r.DB.Model(&model.Candidate{}).
		Where("id = ? AND (assigned_questions IS NULL OR JSON_LENGTH(assigned_questions) = 0)", id).
		Update("assigned_questions", questionIDs)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CandidateRepository) SetStatus(id string, status model.CandidateStatus) error {
	return r.DB.Model(&model.Candidate{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CandidateRepository) UpdateTempPassword(id, tempPassword string) error {
	return r.DB.Model(&model.Candidate{}).Where("id = ?", id).
		Update("temp_password", tempPassword).Error
}

// ApplySubmission 提交写入：answers/status/score/时间戳作为单条 UPDATE 一次性落库，
// 重复提交按最后一次覆盖（幂等契约）
func (r *CandidateRepository) ApplySubmission(id string, answers model.AnswerMap, score int, startedAt, completedAt *time.Time) error {
	return r.DB.Model(&model.Candidate{}).Where("id = ?", id).Updates(map[string]interface{}{
		"answers":                answers,
		"status":                 model.CandidateCompleted,
		"score":                  score,
		"interview_started_at":   startedAt,
		"interview_completed_at": completedAt,
	}).Error
}

func (r *CandidateRepository) ListRecentCompleted(limit int) ([]model.Candidate, error) {
	var cs []model.Candidate
	err := r.DB.Preload("Campaign").
		Where("status = ?", model.CandidateCompleted).
		Order("interview_completed_at desc").Limit(limit).Find(&cs).Error
	return cs, err
}
