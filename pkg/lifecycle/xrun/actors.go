package xrun

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker 返回周期性执行任务的服务函数，使用系统时钟。
//
// interval 必须为正数，否则返回 ErrInvalidInterval。
// immediate 为 true 时启动后立即执行一次。
// fn 返回错误时服务退出；ctx 取消时返回 ctx.Err()。
func Ticker(interval time.Duration, immediate bool, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return TickerWithClock(clockwork.NewRealClock(), interval, immediate, fn)
}

// TickerWithClock 与 Ticker 相同，但使用指定时钟，便于测试中用 clockwork.FakeClock 驱动。
// 每个周期的 fn 同步执行，周期之间不会重叠。clock 为 nil 时使用系统时钟。
// 返回的服务函数可被多次启动，各次运行互不共享状态。
func TickerWithClock(clock clockwork.Clock, interval time.Duration, immediate bool, fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if interval <= 0 {
			return ErrInvalidInterval
		}
		if fn == nil {
			return ErrNilFunc
		}
		clk := clock
		if clk == nil {
			clk = clockwork.NewRealClock()
		}

		// 已取消的 context 不触发业务副作用
		if immediate {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx); err != nil {
				return err
			}
		}

		ticker := clk.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				if err := fn(ctx); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
