package batch_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/hardcard/internal/adapters/batch"
	"github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	convey.Convey("Given a pool of two workers", t, func() {
		pool := batch.NewPool(2, batch.WithName("test-batch"))
		ctx := context.Background()

		convey.Convey("When one item fails", func() {
			items := []string{"a.xml", "bad.xml", "c.xml"}
			results := batch.Run(ctx, pool, items, func(_ context.Context, item string) (int, error) {
				if strings.HasPrefix(item, "bad") {
					return 0, errors.New("parse failed")
				}
				return len(item), nil
			})

			convey.Convey("Then siblings still complete and order is kept", func() {
				convey.So(results, convey.ShouldHaveLength, 3)
				convey.So(results[0].Item, convey.ShouldEqual, "a.xml")
				convey.So(results[0].Value, convey.ShouldEqual, 5)
				convey.So(results[0].Err, convey.ShouldBeNil)
				convey.So(results[1].Err, convey.ShouldNotBeNil)
				convey.So(results[2].Value, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When many items run", func() {
			var running, peak int32
			items := make([]string, 10)
			for i := range items {
				items[i] = "doc"
			}
			batch.Run(ctx, pool, items, func(_ context.Context, _ string) (struct{}, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return struct{}{}, nil
			})

			convey.Convey("Then concurrency never exceeds the limit", func() {
				convey.So(atomic.LoadInt32(&peak), convey.ShouldBeLessThanOrEqualTo, 2)
				convey.So(atomic.LoadInt32(&peak), convey.ShouldBeGreaterThan, 0)
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			var calls int32
			results := batch.Run(cctx, pool, []string{"a", "b"}, func(_ context.Context, _ string) (int, error) {
				atomic.AddInt32(&calls, 1)
				return 1, nil
			})

			convey.Convey("Then no item is processed", func() {
				convey.So(atomic.LoadInt32(&calls), convey.ShouldEqual, 0)
				convey.So(errors.Is(results[0].Err, context.Canceled), convey.ShouldBeTrue)
				convey.So(results[1].Item, convey.ShouldEqual, "b")
			})
		})
	})

	convey.Convey("Given a non-positive worker count", t, func() {
		pool := batch.NewPool(0)

		convey.Convey("Then it defaults to at least one worker", func() {
			convey.So(pool.Workers(), convey.ShouldBeGreaterThan, 0)
		})
	})
}
