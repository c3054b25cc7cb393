package xjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMarshal 表示 JSON 序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")

// Canonical 将任意值序列化为规范化的紧凑 JSON 字符串。
//
// 结构相同的值总是得到相同的输出：对象的键按字典序排列（包括结构体字段），
// 数字保留原始文本精度，不转义 HTML 字符。
// 适合作为缓存键或值的稳定文本表示。
func Canonical(v any) (string, error) {
	first, err := encode(v)
	if err != nil {
		return "", err
	}

	// 先解码成通用结构再编码一次，使结构体字段也按键名排序。
	dec := json.NewDecoder(bytes.NewReader(first))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshal, err)
	}

	out, err := encode(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encode 紧凑编码，不转义 HTML，去掉 Encoder 追加的换行。
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return []byte(strings.TrimSuffix(buf.String(), "\n")), nil
}

// ErrUnmarshal 表示 JSON 反序列化失败。
var ErrUnmarshal = errors.New("xjson: unmarshal failed")

// Decode 将 JSON 文本解码为 T。
// 失败时返回 T 的零值和包装了 [ErrUnmarshal] 的错误。
func Decode[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}
	return out, nil
}
