package repository

import (
	"interview_admin_backend/internal/model"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	DB *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	return r.DB.Create(c).Error
}

func (r *CampaignRepository) FindByID(id string) (*model.Campaign, error) {
	var c model.Campaign
	err := r.DB.Preload("Department").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *CampaignRepository) List(page, limit int) ([]model.Campaign, int64, error) {
	var cs []model.Campaign
	var total int64
	query := r.DB.Model(&model.Campaign{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Department").Order("created_at desc").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, total, err
}

func (r *CampaignRepository) ListAll() ([]model.Campaign, error) {
	var cs []model.Campaign
	err := r.DB.Order("created_at desc").Find(&cs).Error
	return cs, err
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	return r.DB.Save(c).Error
}

func (r *CampaignRepository) UpdateStatus(id string, status model.CampaignStatus) error {
	return r.DB.Model(&model.Campaign{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CampaignRepository) Delete(id string) error {
	return r.DB.Delete(&model.Campaign{}, "id = ?", id).Error
}

func (r *CampaignRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Campaign{}).Count(&total).Error
	return total, err
}

// CountReferencingQuestion 引用某题目的活动数量，题目不可变校验用
func (r *CampaignRepository) CountReferencingQuestion(questionID string) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Campaign{}).
		Where("JSON_CONTAINS(question_set_ids, JSON_QUOTE(?))", questionID).
		Count(&total).Error
	return total, err
}

// UpdateCachedStats 回写反规范化计数缓存；读路径永远以 StatsService 重算为准
func (r *CampaignRepository) UpdateCachedStats(id string, total, completed int, avg float64) error {
	return r.DB.Model(&model.Campaign{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_candidates":     total,
		"completed_candidates": completed,
		"average_score":        avg,
	}).Error
}
