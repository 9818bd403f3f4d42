package effects

import (
	"testing"

	"github.com/decker502/greeting/pkg/utils"
)

const testMessage = "line one\nline two"

// newTestSequencer 构建测试用序列器：标题 "Hi"、副标题 "Sub"、
// 含换行的正文和一个图标目标
func newTestSequencer() (*Sequencer, *utils.Scheduler, *TargetSet) {
	sched := utils.NewScheduler()
	ts := NewTargetSet("Hi", "Sub", testMessage, "*")
	s := NewSequencer(ts, sched)
	return s, sched, ts
}

// advance 以帧步长推进调度器，让延迟链逐环执行
// （链式回调每环都相对当前时钟重新排程，单次大步进只走一环）
func advance(sched *utils.Scheduler, seconds float64) {
	const step = 0.01
	for elapsed := 0.0; elapsed < seconds; elapsed += step {
		sched.Update(step)
	}
}

// TestDefaultEffectApplied 测试构造后默认 fade 效果立即生效
func TestDefaultEffectApplied(t *testing.T) {
	s, sched, ts := newTestSequencer()

	if s.Current() != EffectFade {
		t.Errorf("Current: got %v, want fade", s.Current())
	}
	if !s.Playing() {
		t.Error("Playing: got false, want true")
	}
	if s.Speed() != 1 {
		t.Errorf("Speed: got %v, want 1", s.Speed())
	}

	// 图标脉冲在 apply 时同步添加
	if !ts.Icon.HasClass(ClassPulse) {
		t.Error("Icon should have pulse class immediately")
	}
	// 标题在错峰延迟（下标 0 → 0ms）前隐藏，下一次调度即淡入
	if ts.Title.Alpha != 0 {
		t.Errorf("Title alpha before stagger: got %v, want 0", ts.Title.Alpha)
	}

	sched.Update(0.01)
	if ts.Title.Alpha != 1 || !ts.Title.HasClass(ClassFadeUp) {
		t.Error("Title should fade up after its stagger slot")
	}
	// 正文下标 2 → 600ms 错峰
	if ts.Message.Alpha != 0 {
		t.Error("Message should still be hidden before its stagger slot")
	}
	sched.Update(0.65)
	if ts.Message.Alpha != 1 || !ts.Message.HasClass(ClassFadeUp) {
		t.Error("Message should fade up after 600ms stagger")
	}
}

// TestTypewriterTypesProgressively 测试打字机逐字逐词推进
func TestTypewriterTypesProgressively(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectTypewriter)
	if ts.Title.Text != "" || ts.Subtitle.Text != "" || ts.Message.Text != "" {
		t.Fatal("Typewriter should clear all three text targets at start")
	}

	sched.Update(0.06) // 第一个字符在 50ms
	if ts.Title.Text != "H" {
		t.Errorf("Title after first char: got %q, want %q", ts.Title.Text, "H")
	}
	sched.Update(0.05)
	if ts.Title.Text != "Hi" {
		t.Errorf("Title after second char: got %q, want %q", ts.Title.Text, "Hi")
	}

	// 副标题在标题完成 + 500ms 之后才开始
	if ts.Subtitle.Text != "" {
		t.Errorf("Subtitle started too early: %q", ts.Subtitle.Text)
	}

	advance(sched, 5)
	if ts.Subtitle.Text != "Sub" {
		t.Errorf("Subtitle after completion: got %q, want %q", ts.Subtitle.Text, "Sub")
	}
	if ts.Message.Text != testMessage {
		t.Errorf("Message after completion: got %q, want %q", ts.Message.Text, testMessage)
	}
}

// TestTypewriterRestoreByteForByte 测试切换效果后原文逐字节还原
func TestTypewriterRestoreByteForByte(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectTypewriter)
	advance(sched, 5)

	s.SetEffect(EffectMorph)
	if ts.Title.Text != "Hi" {
		t.Errorf("Title restore: got %q, want %q", ts.Title.Text, "Hi")
	}
	if ts.Subtitle.Text != "Sub" {
		t.Errorf("Subtitle restore: got %q, want %q", ts.Subtitle.Text, "Sub")
	}
	if ts.Message.Text != testMessage {
		t.Errorf("Message restore: got %q, want %q", ts.Message.Text, testMessage)
	}
}

// TestAbandonedChainGuard 测试纪元守卫：被抛弃的打字链不污染新效果
func TestAbandonedChainGuard(t *testing.T) {
	s, sched, ts := newTestSequencer()

	// 在任何字符被打出之前立即切换到 fade
	s.SetEffect(EffectTypewriter)
	s.SetEffect(EffectFade)

	advance(sched, 5)

	// 三个目标应处于 fade 的终态，没有打字链残留的字符
	if ts.Title.Text != "Hi" {
		t.Errorf("Title has stray characters: %q", ts.Title.Text)
	}
	if ts.Message.Text != testMessage {
		t.Errorf("Message has stray characters: %q", ts.Message.Text)
	}
	if ts.Title.Alpha != 1 || !ts.Title.HasClass(ClassFadeUp) {
		t.Error("Title not in fade terminal state")
	}
}

// TestIdempotentCapture 测试多轮捕获-还原不叠包不丢原文
func TestIdempotentCapture(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectTypewriter)
	advance(sched, 0.2) // 标题打完，正文未开始
	s.SetEffect(EffectFade)

	s.SetEffect(EffectTypewriter)
	advance(sched, 5)
	s.SetEffect(EffectRotate)

	if ts.Title.Text != "Hi" {
		t.Errorf("Title after second cycle: got %q, want %q", ts.Title.Text, "Hi")
	}
	if ts.Message.Text != testMessage {
		t.Errorf("Message after second cycle: got %q, want %q", ts.Message.Text, testMessage)
	}
}

// TestSetSpeedRestartsFromBeginning 测试变速重启当前效果且延迟缩放
func TestSetSpeedRestartsFromBeginning(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectTypewriter)
	sched.Update(0.06)
	if ts.Title.Text != "H" {
		t.Fatalf("Precondition failed: title %q", ts.Title.Text)
	}

	s.SetSpeed(2)
	if s.Speed() != 2 {
		t.Errorf("Speed: got %v, want 2", s.Speed())
	}
	// 重启：标题重新清空，从头开始
	if ts.Title.Text != "" {
		t.Errorf("Title after speed change: got %q, want empty (restart)", ts.Title.Text)
	}

	// 延迟减半：第一个字符在 25ms
	sched.Update(0.026)
	if ts.Title.Text != "H" {
		t.Errorf("Title after halved delay: got %q, want %q", ts.Title.Text, "H")
	}
	sched.Update(0.026)
	if ts.Title.Text != "Hi" {
		t.Errorf("Title after second halved delay: got %q, want %q", ts.Title.Text, "Hi")
	}
}

// TestSetSpeedInvalidIgnored 测试非正倍率被忽略
func TestSetSpeedInvalidIgnored(t *testing.T) {
	s, _, _ := newTestSequencer()

	s.SetSpeed(0)
	s.SetSpeed(-1.5)
	if s.Speed() != 1 {
		t.Errorf("Speed after invalid sets: got %v, want 1", s.Speed())
	}
}

// TestPauseRetractsAndResumeReapplies 测试暂停撤销、恢复重放
func TestPauseRetractsAndResumeReapplies(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectTypewriter)
	sched.Update(0.06)

	s.Pause()
	if s.Playing() {
		t.Error("Playing after Pause: got true, want false")
	}
	if ts.Title.Text != "Hi" {
		t.Errorf("Title after pause: got %q, want restored %q", ts.Title.Text, "Hi")
	}
	if ts.Icon.HasClass(ClassPulse) || ts.Title.HasClass(ClassFadeUp) {
		t.Error("Classes should be retracted on pause")
	}

	// 暂停期间旧链全部失效
	sched.Update(5)
	if ts.Title.Text != "Hi" || ts.Subtitle.Text != "Sub" {
		t.Error("Stale typewriter chain mutated targets while paused")
	}

	s.Resume()
	if !s.Playing() {
		t.Error("Playing after Resume: got false, want true")
	}
	if ts.Title.Text != "" {
		t.Errorf("Title after resume: got %q, want empty (effect restarted)", ts.Title.Text)
	}
	sched.Update(0.06)
	if ts.Title.Text != "H" {
		t.Errorf("Title typing after resume: got %q, want %q", ts.Title.Text, "H")
	}
}

// TestUnknownEffectIgnored 测试未知效果种类被忽略
func TestUnknownEffectIgnored(t *testing.T) {
	s, _, _ := newTestSequencer()

	s.SetEffect(EffectKind(42))
	if s.Current() != EffectFade {
		t.Errorf("Current after unknown kind: got %v, want fade", s.Current())
	}
	s.SetEffect(EffectKind(-1))
	if s.Current() != EffectFade {
		t.Errorf("Current after negative kind: got %v, want fade", s.Current())
	}
}

// TestMissingTargetsTolerated 测试缺失目标时全部效果都不崩溃
func TestMissingTargetsTolerated(t *testing.T) {
	sched := utils.NewScheduler()
	ts := &TargetSet{Message: NewTarget(testMessage)} // 其余角色缺失
	s := NewSequencer(ts, sched)

	kinds := []EffectKind{
		EffectFade, EffectTypewriter, EffectMorph,
		EffectScale, EffectRotate, EffectCombined,
	}
	for _, kind := range kinds {
		s.SetEffect(kind)
		advance(sched, 3)
	}

	if ts.Message.Text != testMessage {
		t.Errorf("Message after all effects: got %q, want %q", ts.Message.Text, testMessage)
	}
}

// TestMorphScaleCombinedClasses 测试类分配差异
func TestMorphScaleCombinedClasses(t *testing.T) {
	s, sched, ts := newTestSequencer()

	s.SetEffect(EffectMorph)
	if !ts.Title.HasClass(ClassMorph) || !ts.Icon.HasClass(ClassMorph) {
		t.Error("Morph: title and icon should carry morph class")
	}
	if !ts.Subtitle.HasClass(ClassFadeIn) || !ts.Message.HasClass(ClassFadeIn) {
		t.Error("Morph: subtitle and message should share fade-in")
	}

	s.SetEffect(EffectScale)
	if !ts.Title.HasClass(ClassScalePop) {
		t.Error("Scale: title should carry scale-pop class")
	}
	if ts.Title.HasClass(ClassMorph) {
		t.Error("Scale: morph class should have been retracted")
	}

	s.SetEffect(EffectRotate)
	if !ts.Icon.HasClass(ClassSpin) {
		t.Error("Rotate: icon should carry spin class")
	}

	s.SetEffect(EffectCombined)
	if !ts.Title.HasClass(ClassCombined) || !ts.Icon.HasClass(ClassCombined) {
		t.Error("Combined: title and icon should carry combined class")
	}
	if ts.Subtitle.Alpha != 0 {
		t.Error("Combined: subtitle should be hidden before its delay")
	}
	sched.Update(0.31)
	if ts.Subtitle.Alpha != 1 || !ts.Subtitle.HasClass(ClassFadeUp) {
		t.Error("Combined: subtitle should fade up at +300ms")
	}
	if ts.Message.Alpha != 0 {
		t.Error("Combined: message should still be hidden at +310ms")
	}
	sched.Update(0.3)
	if ts.Message.Alpha != 1 {
		t.Error("Combined: message should fade up at +600ms")
	}
}

// TestParseEffectKind 测试名称解析
func TestParseEffectKind(t *testing.T) {
	cases := []struct {
		name string
		want EffectKind
		ok   bool
	}{
		{"fade", EffectFade, true},
		{"typewriter", EffectTypewriter, true},
		{"combined", EffectCombined, true},
		{"bogus", EffectFade, false},
		{"", EffectFade, false},
	}
	for _, c := range cases {
		got, ok := ParseEffectKind(c.name)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseEffectKind(%q): got (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}
