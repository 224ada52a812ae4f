package tidex

import (
	"github.com/lemconn/tidexlink/common"
	"github.com/lemconn/tidexlink/types"
)

// defaultNonce 未指定 nonce 时使用的值
const defaultNonce int64 = 1

// Signer Tidex 签名工具
type Signer struct {
	secretKey string
}

// NewSigner 创建签名工具
func NewSigner(secretKey string) *Signer {
	return &Signer{
		secretKey: secretKey,
	}
}

// Sign 对编码后的请求体做 HMAC-SHA512 签名（hex）
func (s *Signer) Sign(body string) string {
	return common.SignHMAC512(body, s.secretKey)
}

// BuildBody 构建私有请求体：{...params, method, nonce}
// params 中已有的键保持原位置，method 与 nonce 追加在末尾（或覆盖同名键的值）
func BuildBody(method string, params *types.ExValues, nonce int64) *types.ExValues {
	body := types.NewExValues()
	if params != nil {
		body = params.Clone()
	}
	if nonce == 0 {
		nonce = defaultNonce
	}
	body.Set("method", method)
	body.Set("nonce", nonce)
	return body
}

// SignRequest 构建并签名请求体，返回编码后的请求体和签名
func (s *Signer) SignRequest(method string, params *types.ExValues, nonce int64) (body, signature string) {
	body = BuildBody(method, params, nonce).Encode()
	return body, s.Sign(body)
}
