package service

import (
	"math/rand"
	"sync"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"
)

// AssignmentService 负责把活动题池按活动参数抽取为候选人的固定题目集合。
// 抽取结果只写入一次；面试一旦开始，集合不得再变化。
type AssignmentService struct {
	CandidateRepo *repository.CandidateRepository

	// rand.Rand 非并发安全，创建候选人与首次登录取题会并发走到 Draw
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAssignmentService(candidateRepo *repository.CandidateRepository, seed int64) *AssignmentService {
	return &AssignmentService{
		CandidateRepo: candidateRepo,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// DrawQuestionSet 纯抽取逻辑：isRandomized 时做不放回均匀抽样并打乱展示顺序，
// 否则按题集插入顺序取前 n 个。
func DrawQuestionSet(questionSetIDs model.StringList, questionsPerCandidate int, isRandomized bool, rng *rand.Rand) (model.StringList, error) {
	if len(questionSetIDs) == 0 {
		return nil, util.Validationf("campaign question set is empty")
	}
	if questionsPerCandidate < 1 || questionsPerCandidate > len(questionSetIDs) {
		return nil, util.Validationf("questionsPerCandidate must be between 1 and %d, got %d",
			len(questionSetIDs), questionsPerCandidate)
	}

	if !isRandomized {
		picked := make(model.StringList, questionsPerCandidate)
		copy(picked, questionSetIDs[:questionsPerCandidate])
		return picked, nil
	}

	shuffled := make([]string, len(questionSetIDs))
	copy(shuffled, questionSetIDs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return model.StringList(shuffled[:questionsPerCandidate]), nil
}

// Draw 供创建候选人时使用：抽取但不落库，由调用方随记录一起写入
func (s *AssignmentService) Draw(campaign *model.Campaign) (model.StringList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DrawQuestionSet(campaign.QuestionSetIDs, campaign.QuestionsPerCandidate, campaign.IsRandomized, s.rng)
}

// AssignOnce 首次登录路径：仅当候选人尚无已分配题目时写入。
// 并发登录靠 "assigned_questions 为空" 的条件更新串行化，
// 条件未命中时回读数据库里已有的分配结果。
func (s *AssignmentService) AssignOnce(campaign *model.Campaign, candidate *model.Candidate) (model.StringList, error) {
	if len(candidate.AssignedQuestions) > 0 {
		return candidate.AssignedQuestions, nil
	}
	if candidate.InterviewStartedAt != nil {
		return nil, util.ErrAssignmentLocked
	}

	picked, err := s.Draw(campaign)
	if err != nil {
		return nil, err
	}

	applied, err := s.CandidateRepo.AssignQuestionsIfEmpty(candidate.ID, picked)
	if err != nil {
		return nil, err
	}
	if !applied {
		// 另一个并发请求抢先完成了分配
		fresh, err := s.CandidateRepo.FindByID(candidate.ID)
		if err != nil {
			return nil, err
		}
		return fresh.AssignedQuestions, nil
	}
	return picked, nil
}
