package utils

import "testing"

// TestSchedulerFiresInOrder 测试回调按到期时间顺序执行
func TestSchedulerFiresInOrder(t *testing.T) {
	s := NewScheduler()

	var order []int
	s.After(0.3, func() { order = append(order, 3) })
	s.After(0.1, func() { order = append(order, 1) })
	s.After(0.2, func() { order = append(order, 2) })

	s.Update(1.0)

	if len(order) != 3 {
		t.Fatalf("Expected 3 callbacks, got %d", len(order))
	}
	for i, want := range []int{1, 2, 3} {
		if order[i] != want {
			t.Errorf("order[%d]: got %d, want %d", i, order[i], want)
		}
	}
}

// TestSchedulerDoesNotFireEarly 测试未到期的回调不会提前执行
func TestSchedulerDoesNotFireEarly(t *testing.T) {
	s := NewScheduler()

	fired := false
	s.After(1.0, func() { fired = true })

	s.Update(0.5)
	if fired {
		t.Error("Callback fired before its delay elapsed")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending: got %d, want 1", s.Pending())
	}

	s.Update(0.5)
	if !fired {
		t.Error("Callback did not fire after its delay elapsed")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending: got %d, want 0", s.Pending())
	}
}

// TestSchedulerChaining 测试回调内部继续 After 形成延迟链
func TestSchedulerChaining(t *testing.T) {
	s := NewScheduler()

	var steps []float64
	var step func()
	step = func() {
		steps = append(steps, s.Now())
		if len(steps) < 3 {
			s.After(0.1, step)
		}
	}
	s.After(0.1, step)

	// 单次大步进：链条的后续环节相对当前时钟重新计时，
	// 所以一次 Update 只推进一个环节
	s.Update(0.1)
	if len(steps) != 1 {
		t.Fatalf("After first update: got %d steps, want 1", len(steps))
	}
	s.Update(0.1)
	s.Update(0.1)
	if len(steps) != 3 {
		t.Fatalf("After three updates: got %d steps, want 3", len(steps))
	}
}

// TestSchedulerZeroDelayChain 测试零延迟链在同一次 Update 内完成
func TestSchedulerZeroDelayChain(t *testing.T) {
	s := NewScheduler()

	count := 0
	var step func()
	step = func() {
		count++
		if count < 5 {
			s.After(0, step)
		}
	}
	s.After(0, step)

	s.Update(0.016)
	if count != 5 {
		t.Errorf("Zero-delay chain: got %d steps in one update, want 5", count)
	}
}

// TestSchedulerNilCallback 测试 nil 回调被忽略
func TestSchedulerNilCallback(t *testing.T) {
	s := NewScheduler()
	s.After(0.1, nil)
	if s.Pending() != 0 {
		t.Errorf("Pending after nil callback: got %d, want 0", s.Pending())
	}
	s.Update(1.0) // 不应 panic
}
