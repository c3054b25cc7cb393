package xcache

import "errors"

// =============================================================================
// 写入校验错误
// =============================================================================

var (
	// ErrEmptyKey 表示 key 为 nil 或其字符串形式为空。
	ErrEmptyKey = errors.New("xcache: empty key")

	// ErrInvalidKey 表示 key 的动态类型不可比较（如 any 中装入切片）。
	ErrInvalidKey = errors.New("xcache: key is not comparable")

	// ErrEmptyValue 表示 value 为 nil。
	ErrEmptyValue = errors.New("xcache: empty value")

	// ErrDuplicateKey 表示启用重复写入拒绝策略时 key 已存在。
	ErrDuplicateKey = errors.New("xcache: duplicate key")
)

// =============================================================================
// 读取与生命周期错误
// =============================================================================

var (
	// ErrNotFound 表示 key 不存在或已过期，仅在启用 ThrowOnEmpty 时返回。
	ErrNotFound = errors.New("xcache: key not found")

	// ErrClear 表示清空缓存失败。
	ErrClear = errors.New("xcache: clear failed")

	// ErrClosed 表示缓存已关闭。
	ErrClosed = errors.New("xcache: cache closed")
)

// =============================================================================
// 配置错误
// =============================================================================

var (
	// ErrInvalidLimit 表示容量上限为负数。
	ErrInvalidLimit = errors.New("xcache: limit must not be negative")

	// ErrInvalidLifetime 表示生命周期时长或清理频率为负数。
	ErrInvalidLifetime = errors.New("xcache: lifetime must not be negative")

	// ErrInvalidStorageMode 表示未知的存储模式。
	ErrInvalidStorageMode = errors.New("xcache: invalid storage mode")

	// ErrNilConfig 表示传入的配置源为 nil。
	ErrNilConfig = errors.New("xcache: nil config source")
)

// =============================================================================
// 值转换错误
// =============================================================================

var (
	// ErrTransformValue 表示按 clone 或 stringify 模式转换值失败。
	ErrTransformValue = errors.New("xcache: failed to transform value")

	// ErrDecodeValue 表示 stringify 文本无法解码为目标类型。
	ErrDecodeValue = errors.New("xcache: failed to decode value")
)
