package xcache

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/copystructure"

	"github.com/omeyang/xcache/pkg/util/xjson"
)

// entry 是缓存中的一个条目。写入后不可变，替换时整体新建。
type entry[V any] struct {
	value    V
	text     string // Stringify 模式下的规范化 JSON
	isText   bool
	storedAt time.Time
	lifetime time.Duration // 0 表示沿用缓存级别时长
}

// expired 报告条目在 now 时刻是否已过期。存活时长为 0 的条目永不过期。
func (e *entry[V]) expired(now time.Time, fallback time.Duration) bool {
	d := fallback
	if e.lifetime > 0 {
		d = e.lifetime
	}
	return d > 0 && now.Sub(e.storedAt) > d
}

// load 返回条目中保存的值。
//
// Stringify 条目在 V 能容纳字符串（string 或 any）时直接返回文本，
// 否则将文本解码为新的 V。
func (e *entry[V]) load() (V, error) {
	if !e.isText {
		return e.value, nil
	}
	if s, ok := any(e.text).(V); ok {
		return s, nil
	}
	v, err := xjson.Decode[V](e.text)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("%w: %w", ErrDecodeValue, err)
	}
	return v, nil
}

// newEntry 按存储模式转换 value 并构造条目。非结构化值忽略存储模式。
func newEntry[V any](value V, mode StorageMode, now time.Time, lifetime time.Duration) (*entry[V], error) {
	e := &entry[V]{value: value, storedAt: now, lifetime: lifetime}
	if mode == ByReference || !isStructured(value) {
		return e, nil
	}

	switch mode {
	case Clone:
		copied, err := copystructure.Copy(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransformValue, err)
		}
		v, ok := copied.(V)
		if !ok {
			return nil, fmt.Errorf("%w: clone produced %T", ErrTransformValue, copied)
		}
		e.value = v
	case Stringify:
		text, err := xjson.Canonical(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransformValue, err)
		}
		var zero V
		e.value, e.text, e.isText = zero, text, true
	}
	return e, nil
}

// isStructured 报告 v 的动态类型是否为结构化对象。
func isStructured(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	default:
		return false
	}
}

// isNil 报告 v 是否为 nil 接口或 nil 的指针、map、切片、函数、通道。
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// checkKey 校验写入的 key：nil 或字符串形式为空返回 ErrEmptyKey，
// 动态类型不可比较返回 ErrInvalidKey。
func checkKey(key any, dynamic bool) error {
	if s, ok := key.(string); ok {
		if s == "" {
			return ErrEmptyKey
		}
		return nil
	}
	if isNil(key) {
		return ErrEmptyKey
	}
	if dynamic {
		if err := checkComparable(key); err != nil {
			return err
		}
	}
	if fmt.Sprint(key) == "" {
		return ErrEmptyKey
	}
	return nil
}

// checkComparable 用于 K 为接口类型时，防止不可比较的动态类型在 map 查找中 panic。
func checkComparable(key any) error {
	if t := reflect.TypeOf(key); t != nil && !t.Comparable() {
		return ErrInvalidKey
	}
	return nil
}
