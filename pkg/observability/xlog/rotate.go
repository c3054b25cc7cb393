package xlog

import (
	"errors"
	"io"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrEmptyFilename 表示轮转文件名为空
var ErrEmptyFilename = errors.New("xlog: empty rotation filename")

// RotateOption 配置日志轮转
type RotateOption func(*lumberjack.Logger)

// WithMaxSize 设置单个文件最大大小（MB），<= 0 时使用 lumberjack 默认值（100MB）
func WithMaxSize(mb int) RotateOption {
	return func(l *lumberjack.Logger) {
		if mb > 0 {
			l.MaxSize = mb
		}
	}
}

// WithMaxBackups 设置保留的旧文件数量
func WithMaxBackups(n int) RotateOption {
	return func(l *lumberjack.Logger) {
		if n >= 0 {
			l.MaxBackups = n
		}
	}
}

// WithMaxAge 设置旧文件保留天数
func WithMaxAge(days int) RotateOption {
	return func(l *lumberjack.Logger) {
		if days >= 0 {
			l.MaxAge = days
		}
	}
}

// WithCompress 是否 gzip 压缩旧文件
func WithCompress(compress bool) RotateOption {
	return func(l *lumberjack.Logger) {
		l.Compress = compress
	}
}

func newRotator(filename string, opts ...RotateOption) (io.WriteCloser, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	l := &lumberjack.Logger{
		Filename:  filepath.Clean(filename),
		LocalTime: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l, nil
}
