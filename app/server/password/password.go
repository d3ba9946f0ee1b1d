package password

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// Hasher 负责密码的单向散列与校验，底层使用 argon2id
type Hasher struct {
	params *argon2id.Params
}

func NewHasher() *Hasher {
	return &Hasher{params: argon2id.DefaultParams}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// VerifyAndUpgrade 校验密码。当密码匹配且储存的 hash 参数落后于当前配置时，
// 额外返回一个用新参数重新计算的 hash ，由调用方负责持久化。
func (h *Hasher) VerifyAndUpgrade(plaintext, stored string) (bool, string, error) {
	match, params, err := argon2id.CheckHash(plaintext, stored)
	if err != nil {
		return false, "", fmt.Errorf("failed to check password: %w", err)
	}
	if !match {
		return false, "", nil
	}

	// 参数一致，无需升级
	if params.Memory == h.params.Memory &&
		params.Iterations == h.params.Iterations &&
		params.Parallelism == h.params.Parallelism &&
		params.SaltLength == h.params.SaltLength &&
		params.KeyLength == h.params.KeyLength {
		return true, "", nil
	}

	newHash, err := h.Hash(plaintext)
	if err != nil {
		return false, "", err
	}
	return true, newHash, nil
}

// DummyHash 执行一次完整的散列计算并丢弃结果，
// 用于在账号不存在时保持与正常校验一致的耗时
func (h *Hasher) DummyHash(plaintext string) {
	_, _ = argon2id.CreateHash(plaintext, h.params)
}
