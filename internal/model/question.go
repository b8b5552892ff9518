package model

import "encoding/json"

type AnswerType string

const (
	AnswerMultipleChoice AnswerType = "multiple_choice"
	AnswerCodeEditor     AnswerType = "code_editor"
	AnswerEssay          AnswerType = "essay"
	AnswerFileUpload     AnswerType = "file_upload"
	AnswerRatingScale    AnswerType = "rating_scale"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

type SkillType string

const (
	SkillTechnical  SkillType = "technical"
	SkillBehavioral SkillType = "behavioral"
	SkillLogical    SkillType = "logical"
)

// Question 题库题目，按部门归属；一旦被活动题集引用即视为不可变
// swagger:model Question
type Question struct {
	UUIDBase
	Title        string          `gorm:"size:255;not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	AnswerType   AnswerType      `gorm:"size:30;not null" json:"answerType"`
	DepartmentID string          `gorm:"index;type:varchar(36);not null" json:"departmentId"`
	Department   *Department     `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Difficulty   DifficultyLevel `gorm:"size:20;not null" json:"difficulty"`
	SkillType    SkillType       `gorm:"size:20;not null" json:"skillType"`
	Tags         StringList      `gorm:"type:json" json:"tags"`
	Marks        int             `gorm:"default:10" json:"marks"`

	// 题型相关负载
	Options       StringList      `gorm:"type:json" json:"options,omitempty"`       // multiple_choice
	CorrectAnswer json.RawMessage `gorm:"type:json" json:"correctAnswer,omitempty"` // multiple_choice，string 或 []string
	CodeTemplate  string          `gorm:"type:text" json:"codeTemplate,omitempty"`  // code_editor
	Rubric        string          `gorm:"type:text" json:"rubric,omitempty"`        // essay
	FileTypes     StringList      `gorm:"type:json" json:"fileTypes,omitempty"`     // file_upload
	RatingScale   int             `gorm:"default:0" json:"ratingScale,omitempty"`   // rating_scale

	CreatedBy string `gorm:"size:100" json:"createdBy"`
}

func (Question) TableName() string {
	return "questions"
}
