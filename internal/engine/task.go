package engine

// Task is a cancellable tick-driven timer handle. Effects schedule their
// delayed and repeating work through tasks so that puzzle-change cleanup is a
// single CancelAll instead of tracking individual timer state.
type Task struct {
	remaining int
	interval  int // 0 for one-shot
	fn        func()
	done      bool
}

// Cancel stops the task; its function will not run again.
func (t *Task) Cancel() {
	t.done = true
}

// Active reports whether the task is still pending.
func (t *Task) Active() bool {
	return t != nil && !t.done
}

// Runner advances a set of tasks one tick at a time. Single-writer: the owning
// game steps it from its simulation loop, so no locking is needed.
type Runner struct {
	tasks []*Task
}

// After schedules fn to run once after the given number of ticks.
func (r *Runner) After(ticks int, fn func()) *Task {
	if ticks < 1 {
		ticks = 1
	}
	t := &Task{remaining: ticks, fn: fn}
	r.tasks = append(r.tasks, t)
	return t
}

// Every schedules fn to run every interval ticks until cancelled.
func (r *Runner) Every(interval int, fn func()) *Task {
	if interval < 1 {
		interval = 1
	}
	t := &Task{remaining: interval, interval: interval, fn: fn}
	r.tasks = append(r.tasks, t)
	return t
}

// Tick advances all tasks by one tick, firing any that come due. Fired
// one-shot tasks and cancelled tasks are dropped.
func (r *Runner) Tick() {
	live := r.tasks[:0]
	for _, t := range r.tasks {
		if t.done {
			continue
		}
		t.remaining--
		if t.remaining <= 0 {
			t.fn()
			if t.interval > 0 && !t.done {
				t.remaining = t.interval
			} else {
				t.done = true
			}
		}
		if !t.done {
			live = append(live, t)
		}
	}
	r.tasks = live
}

// CancelAll stops every pending task.
func (r *Runner) CancelAll() {
	for _, t := range r.tasks {
		t.done = true
	}
	r.tasks = r.tasks[:0]
}
