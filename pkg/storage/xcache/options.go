package xcache

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/omeyang/xcache/pkg/observability/xlog"
	"github.com/omeyang/xcache/pkg/observability/xmetrics"
)

// DefaultPruneFrequency 后台清理的默认频率。
const DefaultPruneFrequency = 500 * time.Millisecond

// =============================================================================
// 存储模式
// =============================================================================

// StorageMode 决定结构化值（struct、map、slice、array、指针）写入时如何保存。
// 字符串、数字等非结构化值总是原样保存。
type StorageMode int

const (
	// ByReference 保存调用方传入的原值，调用方之后的修改通过缓存可见。
	ByReference StorageMode = iota
	// Clone 保存深拷贝，与调用方的对象互不影响。
	Clone
	// Stringify 保存规范化 JSON 文本。
	Stringify
)

// String 返回存储模式名称。
func (m StorageMode) String() string {
	switch m {
	case ByReference:
		return "byReference"
	case Clone:
		return "clone"
	case Stringify:
		return "stringify"
	default:
		return fmt.Sprintf("StorageMode(%d)", int(m))
	}
}

// UnmarshalText 实现 encoding.TextUnmarshaler，大小写不敏感。
func (m *StorageMode) UnmarshalText(text []byte) error {
	mode, err := ParseStorageMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseStorageMode 解析存储模式名称，空字符串视为 ByReference。
func ParseStorageMode(s string) (StorageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "byreference":
		return ByReference, nil
	case "clone":
		return Clone, nil
	case "stringify":
		return Stringify, nil
	default:
		return ByReference, fmt.Errorf("%w: %q", ErrInvalidStorageMode, s)
	}
}

func (m StorageMode) valid() bool {
	return m >= ByReference && m <= Stringify
}

// =============================================================================
// 构造选项
// =============================================================================

// Lifetime 定义条目生命周期。
type Lifetime struct {
	// Duration 条目存活时长，0 表示永不过期且不启动后台清理。
	Duration time.Duration `koanf:"duration"`
	// Frequency 后台清理频率，0 表示使用 DefaultPruneFrequency。
	Frequency time.Duration `koanf:"frequency"`
}

// Options 定义缓存构造选项，构造后不可变，作为每次操作的默认值。
type Options struct {
	// Limit 最大条目数，0 表示不限制。超出时按写入顺序淘汰最旧条目。
	Limit int
	// DuplicateAddThrows 为 true 时，对已存在的 key 写入返回 ErrDuplicateKey。
	DuplicateAddThrows bool
	// ThrowOnEmpty 为 true 时，读取不存在的 key 返回 ErrNotFound。
	ThrowOnEmpty bool
	// AddObjectsAs 结构化值的默认存储模式。
	AddObjectsAs StorageMode
	// Lifetime 条目生命周期。
	Lifetime Lifetime

	// Clock 时钟，默认系统时钟。测试中可注入 clockwork.FakeClock。
	Clock clockwork.Clock
	// Logger 日志记录器，默认 xlog.Default()。
	Logger xlog.Logger
	// Observer 操作观测器，默认 NoopObserver。
	Observer xmetrics.Observer
	// Name 缓存实例名称，写入日志和观测属性。
	Name string
}

// Option 定义构造选项函数类型。
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		AddObjectsAs: ByReference,
		Clock:        clockwork.NewRealClock(),
		Logger:       xlog.Default(),
		Observer:     xmetrics.NoopObserver{},
		Name:         "default",
	}
}

func (o *Options) validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, o.Limit)
	}
	if o.Lifetime.Duration < 0 || o.Lifetime.Frequency < 0 {
		return fmt.Errorf("%w: duration=%s frequency=%s",
			ErrInvalidLifetime, o.Lifetime.Duration, o.Lifetime.Frequency)
	}
	if !o.AddObjectsAs.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStorageMode, o.AddObjectsAs)
	}
	return nil
}

// WithLimit 设置最大条目数。
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithDuplicateAddThrows 设置重复写入是否返回 ErrDuplicateKey。
func WithDuplicateAddThrows(enable bool) Option {
	return func(o *Options) {
		o.DuplicateAddThrows = enable
	}
}

// WithThrowOnEmpty 设置读取缺失 key 是否返回 ErrNotFound。
func WithThrowOnEmpty(enable bool) Option {
	return func(o *Options) {
		o.ThrowOnEmpty = enable
	}
}

// WithAddObjectsAs 设置结构化值的默认存储模式。
func WithAddObjectsAs(mode StorageMode) Option {
	return func(o *Options) {
		o.AddObjectsAs = mode
	}
}

// WithLifetime 设置条目存活时长和后台清理频率。frequency 为 0 时使用 DefaultPruneFrequency。
func WithLifetime(duration, frequency time.Duration) Option {
	return func(o *Options) {
		o.Lifetime = Lifetime{Duration: duration, Frequency: frequency}
	}
}

// WithClock 设置时钟，nil 忽略。
func WithClock(clock clockwork.Clock) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithLogger 设置日志记录器，nil 忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithObserver 设置操作观测器，nil 忽略。
func WithObserver(observer xmetrics.Observer) Option {
	return func(o *Options) {
		if observer != nil {
			o.Observer = observer
		}
	}
}

// WithName 设置缓存实例名称，空值忽略。
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// =============================================================================
// 单次写入选项
// =============================================================================

type addOptions struct {
	mode        *StorageMode
	lifetime    time.Duration
	hasLifetime bool
	duplicate   *bool
}

// AddOption 定义单次 Add 调用的覆盖选项。
type AddOption func(*addOptions)

// WithAddObjectAs 覆盖本次写入的存储模式。
func WithAddObjectAs(mode StorageMode) AddOption {
	return func(o *addOptions) {
		o.mode = &mode
	}
}

// WithEntryLifetime 为本条目设置独立的存活时长，覆盖 Lifetime.Duration。
// 在读取判断和后台清理中都生效；0 表示沿用缓存级别的时长。
func WithEntryLifetime(d time.Duration) AddOption {
	return func(o *addOptions) {
		o.lifetime = d
		o.hasLifetime = true
	}
}

// WithAddDuplicateThrows 覆盖本次写入的重复 key 策略。
func WithAddDuplicateThrows(enable bool) AddOption {
	return func(o *addOptions) {
		o.duplicate = &enable
	}
}

func (o *addOptions) validate() error {
	if o.mode != nil && !o.mode.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStorageMode, *o.mode)
	}
	if o.hasLifetime && o.lifetime < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLifetime, o.lifetime)
	}
	return nil
}

// =============================================================================
// 单次读取选项
// =============================================================================

type readOptions struct {
	throwOnEmpty *bool
}

// ReadOption 定义单次 Get/Pop 调用的覆盖选项。
type ReadOption func(*readOptions)

// WithReadThrowOnEmpty 覆盖本次读取的 ThrowOnEmpty 策略。
func WithReadThrowOnEmpty(enable bool) ReadOption {
	return func(o *readOptions) {
		o.throwOnEmpty = &enable
	}
}
