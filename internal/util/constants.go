package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 兜底除数：候选人没有任何已分配题目时避免除零（与原流水线一致的近似，不是评分规则）
const FallbackQuestionCount = 10

// 每题固定分值
const MarksPerQuestion = 10
