package option

// GetString 返回字符串值及是否存在（非 nil 且非空）
func GetString(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// GetInt 返回 int 值及是否存在（非 nil）
func GetInt(i *int) (int, bool) {
	if i == nil {
		return 0, false
	}
	return *i, true
}

// GetInt64 返回 int64 值及是否存在（非 nil）
func GetInt64(i *int64) (int64, bool) {
	if i == nil {
		return 0, false
	}
	return *i, true
}
