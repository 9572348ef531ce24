package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/replicate/orpanic/must"
	"github.com/replicate/orpanic/option"
	"github.com/replicate/orpanic/report"
	"github.com/replicate/orpanic/telemetry"
)

type task struct {
	name     string
	priority int
}

func main() {
	tasksFlag := flag.String("tasks", "clean=1,deploy=10,backup=3", "comma separated name=priority pairs")

	flag.Parse()

	report.Init()
	ctx, span := telemetry.Tracer("nexttask", "main").Start(context.Background(), "nexttask")
	defer func() { must.Do(telemetry.Shutdown(context.Background())) }()
	defer span.End()
	defer report.Recover(ctx)

	tasks := parseTasks(*tasksFlag)
	next := highest(tasks).OrPanic("No tasks available")

	fmt.Printf("Next task: %s (priority %d)\n", next.name, next.priority)
}

func parseTasks(s string) []task {
	var tasks []task
	for _, pair := range strings.Split(s, ",") {
		if pair == "" {
			continue
		}
		name, priority, ok := strings.Cut(pair, "=")
		p := must.From(strconv.Atoi(option.New(priority, ok).OrPanic("task " + name + " has no priority"))).
			OrPanic(fmt.Sprintf("task %s has an invalid priority", name))
		tasks = append(tasks, task{name: name, priority: p})
	}
	return tasks
}

// highest returns the task with the largest priority; ties go to the last.
func highest(tasks []task) option.Option[task] {
	best := option.None[task]()
	for _, t := range tasks {
		if b, ok := best.Get(); !ok || t.priority >= b.priority {
			best = option.Some(t)
		}
	}
	return best
}
