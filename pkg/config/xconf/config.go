package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 定义配置接口。
// 基础读取请直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回当前的 koanf 实例。Reload 后旧指针仍可用，但数据已过期。
	Client() *koanf.Koanf

	// Unmarshal 将指定路径的配置反序列化到目标结构体，path 为空时反序列化整个配置。
	// 启用 encoding.TextUnmarshaler 与 time.Duration 字符串（如 "500ms"）解码。
	Unmarshal(path string, target any) error

	// Exists 报告路径是否存在于配置中。
	Exists(path string) bool

	// Reload 重新加载配置文件。从字节数据创建的 Config 返回 ErrReloadFromBytes。
	Reload() error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	// Format 返回配置格式。
	Format() Format
}
