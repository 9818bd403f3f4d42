package utils

import "sort"

// scheduledTask 是一个待执行的定时回调
type scheduledTask struct {
	dueAt float64 // 到期时间（调度器时钟，秒）
	seq   int     // 入队序号，保证同一时刻的回调按入队顺序执行
	fn    func()
}

// Scheduler is a single-threaded timer queue driven by the game loop.
// Callbacks registered with After fire from Update once their delay has
// elapsed, in due-time order (insertion order breaks ties).
//
// 整个程序只有一个执行上下文（ebiten 的 Update/Draw 循环），
// 所以这里不需要锁：After 和 Update 永远在同一个 goroutine 中调用。
// 回调内部可以继续调用 After 形成延迟链（显式链式调度，
// 累计漂移是可接受的，不做固定间隔补偿）。
type Scheduler struct {
	now     float64
	nextSeq int
	tasks   []scheduledTask
}

// NewScheduler creates an empty scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock in seconds since creation.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After registers fn to run once, delay seconds from the current clock.
// A zero or negative delay fires on the next Update call.
func (s *Scheduler) After(delay float64, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.tasks = append(s.tasks, scheduledTask{
		dueAt: s.now + delay,
		seq:   s.nextSeq,
		fn:    fn,
	})
	s.nextSeq++
}

// Update advances the clock by deltaTime seconds and fires every task
// whose due time has been reached. Tasks enqueued by a firing callback
// are considered for the same Update pass, so zero-delay chains make
// progress immediately.
func (s *Scheduler) Update(deltaTime float64) {
	if deltaTime > 0 {
		s.now += deltaTime
	}

	for {
		// 每轮重新挑选到期任务：回调可能又排入了新的到期任务
		due := s.takeDue()
		if len(due) == 0 {
			return
		}
		for _, task := range due {
			task.fn()
		}
	}
}

// Pending returns the number of tasks that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// takeDue removes and returns all tasks due at the current clock,
// sorted by due time then insertion order.
func (s *Scheduler) takeDue() []scheduledTask {
	var due []scheduledTask
	remaining := s.tasks[:0]
	for _, task := range s.tasks {
		if task.dueAt <= s.now {
			due = append(due, task)
		} else {
			remaining = append(remaining, task)
		}
	}
	s.tasks = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].dueAt != due[j].dueAt {
			return due[i].dueAt < due[j].dueAt
		}
		return due[i].seq < due[j].seq
	})
	return due
}
