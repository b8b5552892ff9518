package util

import (
	"errors"
	"fmt"
)

// 错误分类：controller 层统一翻译为 HTTP 状态码，core 层只向上传播
var (
	// ErrValidation 输入不合法 -> 400
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 资源不存在 -> 404
	ErrNotFound = errors.New("resource not found")
	// ErrConsistency 数据一致性被破坏（如题目部门与活动部门不符）-> 500，
	// 需要管理员介入，绝不静默修复
	ErrConsistency = errors.New("data consistency violation")
	// ErrAssignmentLocked 面试开始后禁止重新分配题目 -> 409
	ErrAssignmentLocked = errors.New("question assignment locked after interview start")
)

var (
	ErrAdminNotFound       = errors.New("管理员账号不存在")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrCampaignNotActive   = errors.New("this campaign is not currently active")
	ErrDepartmentReferenced = errors.New("department still referenced by questions or campaigns")
)

// Validationf 构造一个携带 ErrValidation 分类的错误
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf 构造一个携带 ErrNotFound 分类的错误
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Consistencyf 构造一个携带 ErrConsistency 分类的错误
func Consistencyf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConsistency}, args...)...)
}
