package xcache

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/jonboulle/clockwork"

	"github.com/omeyang/xcache/pkg/lifecycle/xrun"
	"github.com/omeyang/xcache/pkg/observability/xlog"
	"github.com/omeyang/xcache/pkg/observability/xmetrics"
)

// componentName 观测与日志中的组件名。
const componentName = "xcache"

// 操作名称。
const (
	opAdd   = "add"
	opGet   = "get"
	opPop   = "pop"
	opHas   = "has"
	opClear = "clear"
	opPrune = "prune"
)

// Cache 是带可选过期、容量上限和存储模式的进程内键值缓存。
//
// 必须通过 [New] 创建，零值不可用。所有方法都是并发安全的：
// 每个操作的临界区在同一把互斥锁内同步完成，后台清理也在这把锁内执行，
// 因此任何操作都不会观察到清理到一半的状态。
//
// 条目按写入顺序保存。容量满时淘汰最早写入的条目（FIFO），读取不改变顺序。
// 替换已存在的 key 会把它移到最新位置。
//
// 指针类型的 key 按地址比较：两个内容相同的不同指针是两个条目，
// 用内容相同但地址不同的指针查找会得到"不存在"。
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	store *simplelru.LRU[K, *entry[V]]

	opts       *Options
	clock      clockwork.Clock
	logger     xlog.Logger
	dynamicKey bool // K 为接口类型，需要检查动态类型可比较性

	group     *xrun.Group
	closed    atomic.Bool
	closeOnce sync.Once

	stats counters
}

// New 创建缓存。
//
// 选项无效时返回 ErrInvalidLimit、ErrInvalidLifetime 或 ErrInvalidStorageMode。
// Lifetime.Duration > 0 时启动后台清理任务，按 Lifetime.Frequency 周期执行，
// 调用 Close 停止。
func New[K comparable, V any](opts ...Option) (*Cache[K, V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Lifetime.Duration > 0 && o.Lifetime.Frequency == 0 {
		o.Lifetime.Frequency = DefaultPruneFrequency
	}

	size := o.Limit
	if size == 0 {
		size = math.MaxInt
	}
	store, err := simplelru.NewLRU[K, *entry[V]](size, nil)
	if err != nil {
		return nil, err
	}

	c := &Cache[K, V]{
		store:      store,
		opts:       o,
		clock:      o.Clock,
		logger:     o.Logger.With(xlog.Component(componentName), slog.String("cache", o.Name)),
		dynamicKey: reflect.TypeFor[K]().Kind() == reflect.Interface,
	}

	if o.Lifetime.Duration > 0 {
		c.startPruner()
	}
	return c, nil
}

// Add 写入一个条目。
//
// 校验顺序：ErrEmptyKey、ErrEmptyValue、单次选项、ErrDuplicateKey。
// 任一校验失败都不会修改缓存。校验通过后，若设置了 Limit、key 为新 key
// 且条目数已达上限，先淘汰最早写入的一个条目，再写入。
func (c *Cache[K, V]) Add(ctx context.Context, key K, value V, opts ...AddOption) (err error) {
	ctx, span := c.start(ctx, opAdd)
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	if err = c.guard(ctx); err != nil {
		return err
	}
	if err = checkKey(key, c.dynamicKey); err != nil {
		return fmt.Errorf("%w: %v", err, key)
	}
	if isNil(value) {
		return fmt.Errorf("%w: key %v", ErrEmptyValue, key)
	}

	ao := &addOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(ao)
		}
	}
	if err = ao.validate(); err != nil {
		return err
	}
	mode := c.opts.AddObjectsAs
	if ao.mode != nil {
		mode = *ao.mode
	}
	duplicateThrows := c.opts.DuplicateAddThrows
	if ao.duplicate != nil {
		duplicateThrows = *ao.duplicate
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return ErrClosed
	}
	now := c.clock.Now()
	_, exists := c.lookup(ctx, key, now)
	if exists && duplicateThrows {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	e, err := newEntry(value, mode, now, ao.lifetime)
	if err != nil {
		return fmt.Errorf("key %v: %w", key, err)
	}

	if c.opts.Limit > 0 && !exists && c.store.Len() >= c.opts.Limit {
		if oldest, _, ok := c.store.RemoveOldest(); ok {
			c.stats.evictions.Add(1)
			c.logger.Debug(ctx, "evicted oldest entry", slog.Any("key", oldest))
		}
	}
	c.store.Add(key, e)
	c.stats.adds.Add(1)
	return nil
}

// Get 读取 key 对应的值。
//
// key 不存在或已过期时，默认返回零值和 false；
// ThrowOnEmpty 生效时返回包装了 ErrNotFound 的错误，错误信息包含 key。
func (c *Cache[K, V]) Get(ctx context.Context, key K, opts ...ReadOption) (V, bool, error) {
	return c.read(ctx, opGet, key, false, opts)
}

// Pop 读取并删除 key 对应的条目。读取与删除在同一临界区内完成。
// 缺失时的行为与 Get 相同。
func (c *Cache[K, V]) Pop(ctx context.Context, key K, opts ...ReadOption) (V, bool, error) {
	return c.read(ctx, opPop, key, true, opts)
}

func (c *Cache[K, V]) read(ctx context.Context, op string, key K, remove bool, opts []ReadOption) (value V, ok bool, err error) {
	ctx, span := c.start(ctx, op)
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Bool("hit", ok)}})
	}()

	if err = c.guard(ctx); err != nil {
		return value, false, err
	}
	if err = c.checkLookupKey(key); err != nil {
		return value, false, err
	}

	ro := &readOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(ro)
		}
	}
	throwOnEmpty := c.opts.ThrowOnEmpty
	if ro.throwOnEmpty != nil {
		throwOnEmpty = *ro.throwOnEmpty
	}

	c.mu.Lock()
	if c.closed.Load() {
		c.mu.Unlock()
		return value, false, ErrClosed
	}
	e, found := c.lookup(ctx, key, c.clock.Now())
	if found && remove {
		c.store.Remove(key)
	}
	c.mu.Unlock()

	if !found {
		c.stats.misses.Add(1)
		if throwOnEmpty {
			return value, false, fmt.Errorf("%w: %v", ErrNotFound, key)
		}
		return value, false, nil
	}

	c.stats.hits.Add(1)
	value, err = e.load()
	if err != nil {
		return value, false, fmt.Errorf("key %v: %w", key, err)
	}
	return value, true, nil
}

// Has 报告 key 是否存在且未过期。
func (c *Cache[K, V]) Has(ctx context.Context, key K) (found bool, err error) {
	ctx, span := c.start(ctx, opHas)
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Bool("hit", found)}})
	}()

	if err = c.guard(ctx); err != nil {
		return false, err
	}
	if err = c.checkLookupKey(key); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return false, ErrClosed
	}
	_, found = c.lookup(ctx, key, c.clock.Now())
	return found, nil
}

// Clear 删除所有条目，空缓存上调用同样成功。
// 失败（缓存已关闭或 ctx 已结束）时返回包装了 ErrClear 的错误。
func (c *Cache[K, V]) Clear(ctx context.Context) (err error) {
	ctx, span := c.start(ctx, opClear)
	defer func() { span.End(xmetrics.Result{Err: err}) }()

	if err = c.guard(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrClear, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return fmt.Errorf("%w: %w", ErrClear, ErrClosed)
	}
	n := c.store.Len()
	c.store.Purge()
	c.logger.Debug(ctx, "cache cleared", xlog.Count(int64(n)))
	return nil
}

// Len 返回当前保存的条目数，可能包含已过期但尚未清理的条目。
// 缓存关闭后返回 0。
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Keys 返回所有未过期的 key，按写入顺序从旧到新排列。缓存关闭后返回 nil。
func (c *Cache[K, V]) Keys() []K {
	if c.closed.Load() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	keys := c.store.Keys()
	live := keys[:0]
	for _, k := range keys {
		if e, ok := c.store.Peek(k); ok && !e.expired(now, c.opts.Lifetime.Duration) {
			live = append(live, k)
		}
	}
	return live
}

// Close 停止后台清理任务并清空缓存。幂等，只有第一次调用返回清理任务的退出错误。
// 关闭后的 Add、Get、Pop、Has、Prune 返回 ErrClosed。
func (c *Cache[K, V]) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		if c.group != nil {
			c.group.Cancel(nil)
			err = c.group.Wait()
		}

		c.mu.Lock()
		c.store.Purge()
		c.mu.Unlock()

		c.logger.Debug(context.Background(), "cache closed")
	})
	return err
}

// lookup 返回 key 对应的未过期条目。已过期的条目会被顺带删除。调用方须持有 c.mu。
func (c *Cache[K, V]) lookup(ctx context.Context, key K, now time.Time) (*entry[V], bool) {
	e, ok := c.store.Peek(key)
	if !ok {
		return nil, false
	}
	if e.expired(now, c.opts.Lifetime.Duration) {
		c.store.Remove(key)
		c.stats.expirations.Add(1)
		c.logger.Debug(ctx, "expired entry removed on read", slog.Any("key", key))
		return nil, false
	}
	return e, true
}

// checkLookupKey 拒绝动态类型不可比较的 key；其他 key（包括 nil）按普通查找处理。
func (c *Cache[K, V]) checkLookupKey(key K) error {
	if !c.dynamicKey {
		return nil
	}
	if err := checkComparable(key); err != nil {
		return fmt.Errorf("%w: %T", err, key)
	}
	return nil
}

// guard 在进入临界区前检查关闭状态和 ctx。
func (c *Cache[K, V]) guard(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return ctx.Err()
}

// start 开始一次观测。nil ctx 归一化为 context.Background()。
func (c *Cache[K, V]) start(ctx context.Context, op string) (context.Context, xmetrics.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return xmetrics.Start(ctx, c.opts.Observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: op,
		Kind:      xmetrics.KindInternal,
		Attrs:     []xmetrics.Attr{xmetrics.String("cache", c.opts.Name)},
	})
}
