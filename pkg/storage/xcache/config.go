package xcache

import (
	"fmt"

	"github.com/omeyang/xcache/pkg/config/xconf"
)

// Config 是可从配置文件加载的缓存选项。
//
// YAML 示例：
//
//	cache:
//	  name: sessions
//	  limit: 1000
//	  duplicate_add_throws: false
//	  throw_on_empty: true
//	  add_objects_as: clone
//	  lifetime:
//	    duration: 5m
//	    frequency: 500ms
type Config struct {
	Name               string      `koanf:"name"`
	Limit              int         `koanf:"limit"`
	DuplicateAddThrows bool        `koanf:"duplicate_add_throws"`
	ThrowOnEmpty       bool        `koanf:"throw_on_empty"`
	AddObjectsAs       StorageMode `koanf:"add_objects_as"`
	Lifetime           Lifetime    `koanf:"lifetime"`
}

// LoadConfig 从 conf 的 path 路径加载缓存配置并校验，path 为空时读取整个配置。
func LoadConfig(conf xconf.Config, path string) (Config, error) {
	if conf == nil {
		return Config{}, ErrNilConfig
	}

	var cfg Config
	if err := conf.Unmarshal(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("xcache: load config %q: %w", path, err)
	}

	o := defaultOptions()
	for _, opt := range cfg.Options() {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options 将配置转换为构造选项。
func (cfg Config) Options() []Option {
	return []Option{
		WithName(cfg.Name),
		WithLimit(cfg.Limit),
		WithDuplicateAddThrows(cfg.DuplicateAddThrows),
		WithThrowOnEmpty(cfg.ThrowOnEmpty),
		WithAddObjectsAs(cfg.AddObjectsAs),
		WithLifetime(cfg.Lifetime.Duration, cfg.Lifetime.Frequency),
	}
}

// NewFromConfig 按配置创建缓存，opts 在配置之后应用，可覆盖配置项或注入时钟、日志等依赖。
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option) (*Cache[K, V], error) {
	all := append(cfg.Options(), opts...)
	return New[K, V](all...)
}
