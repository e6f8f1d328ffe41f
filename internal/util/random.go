package util

import (
	"crypto/rand"
	"math/big"
)

const randomCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRandomString 生成指定长度的随机字符串（文件名后缀等）
func GenerateRandomString(length int) string {
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomCharset))))
		if err != nil {
			result[i] = randomCharset[0]
			continue
		}
		result[i] = randomCharset[n.Int64()]
	}
	return string(result)
}
