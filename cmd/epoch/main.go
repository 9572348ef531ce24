package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/replicate/orpanic/must"
	"github.com/replicate/orpanic/report"
	"github.com/replicate/orpanic/result"
	"github.com/replicate/orpanic/telemetry"
)

var errBeforeEpoch = errors.New("time is before the Unix epoch")

func main() {
	millis := flag.Bool("millis", false, "print milliseconds instead of seconds (default: false)")

	flag.Parse()

	report.Init()
	ctx, span := telemetry.Tracer("epoch", "main").Start(context.Background(), "epoch")
	defer func() { must.Do(telemetry.Shutdown(context.Background())) }()
	defer span.End()
	defer report.Recover(ctx)

	d := sinceEpoch(time.Now()).OrPanic("System time is earlier than UNIX epoch")

	if *millis {
		fmt.Printf("Milliseconds since epoch: %d\n", d.Milliseconds())
	} else {
		fmt.Printf("Seconds since epoch: %d\n", int64(d.Seconds()))
	}
}

func sinceEpoch(now time.Time) result.Result[time.Duration, error] {
	d := now.Sub(time.Unix(0, 0))
	if d < 0 {
		return result.Err[time.Duration](fmt.Errorf("%w: %s", errBeforeEpoch, now.UTC().Format(time.RFC3339)))
	}
	return result.Ok[time.Duration, error](d)
}
