package effects

import (
	"log"

	"github.com/decker502/greeting/pkg/utils"
)

// EffectKind 效果种类
type EffectKind int

const (
	// EffectFade 错峰淡入 + 图标脉冲（默认效果）
	EffectFade EffectKind = iota
	// EffectTypewriter 打字机：标题副标题逐字、正文逐词
	EffectTypewriter
	// EffectMorph 标题图标形变，副标题正文淡入
	EffectMorph
	// EffectScale 标题图标缩放弹出，副标题正文淡入
	EffectScale
	// EffectRotate 图标持续旋转，文字错峰淡入
	EffectRotate
	// EffectCombined 标题图标组合动画，副标题正文依次淡入
	EffectCombined

	effectKindCount
)

// String returns the effect name used in settings and logs.
func (k EffectKind) String() string {
	switch k {
	case EffectFade:
		return "fade"
	case EffectTypewriter:
		return "typewriter"
	case EffectMorph:
		return "morph"
	case EffectScale:
		return "scale"
	case EffectRotate:
		return "rotate"
	case EffectCombined:
		return "combined"
	default:
		return "unknown"
	}
}

// ParseEffectKind 按名称解析效果种类（设置持久化用）
func ParseEffectKind(name string) (EffectKind, bool) {
	for k := EffectKind(0); k < effectKindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return EffectFade, false
}

// Sequencer 效果序列器
//
// 同一时刻只有一种效果生效：切换效果时先完整撤销上一个效果
// 留下的类、样式和被破坏性改写的文字，再应用新效果。
//
// 取消语义（必须成立的正确性条件，不是可选加固）：
// 已排程的回调不会被撤回，它们在执行时检查排程时捕获的纪元号，
// 与当前纪元不一致就直接放弃，避免污染新效果的状态。
// SetEffect / Pause / Resume / SetSpeed 都会递增纪元。
type Sequencer struct {
	targets *TargetSet
	sched   *utils.Scheduler

	current EffectKind
	playing bool
	speed   float64
	epoch   int
}

// NewSequencer 创建序列器并立即应用默认效果（fade）
//
// targets 在构造时注入，之后不再查找；sched 必须与驱动场景
// 共用同一个调度器，保证单执行上下文内的严格顺序。
func NewSequencer(targets *TargetSet, sched *utils.Scheduler) *Sequencer {
	s := &Sequencer{
		targets: targets,
		sched:   sched,
		current: EffectFade,
		playing: true,
		speed:   1,
	}
	s.apply()
	return s
}

// Current 返回当前效果
func (s *Sequencer) Current() EffectKind {
	return s.current
}

// Playing 返回是否处于播放状态
func (s *Sequencer) Playing() bool {
	return s.playing
}

// Speed 返回播放速度倍率
func (s *Sequencer) Speed() float64 {
	return s.speed
}

// Targets 返回注入的目标集合（渲染方使用）
func (s *Sequencer) Targets() *TargetSet {
	return s.targets
}

// SetEffect 切换效果：撤销当前效果的全部视觉状态后立即应用新效果
//
// 未知效果种类被忽略。
func (s *Sequencer) SetEffect(kind EffectKind) {
	if kind < 0 || kind >= effectKindCount {
		log.Printf("[Effects] Ignoring unknown effect kind %d", kind)
		return
	}
	s.epoch++
	s.retractAll()
	s.current = kind
	s.apply()
}

// Pause 撤销全部视觉状态并停止播放
func (s *Sequencer) Pause() {
	s.epoch++
	s.retractAll()
	s.playing = false
}

// Resume 恢复播放并重新应用当前效果
func (s *Sequencer) Resume() {
	s.playing = true
	s.epoch++
	s.apply()
}

// SetSpeed 设置播放速度倍率
//
// 倍率必须为正，否则忽略。播放中修改速度会从头重启当前效果的
// 定时序列（已知的重启行为，不做运行中定时器的在线缩放）。
func (s *Sequencer) SetSpeed(multiplier float64) {
	if multiplier <= 0 {
		log.Printf("[Effects] Ignoring non-positive speed %v", multiplier)
		return
	}
	s.speed = multiplier
	if s.playing {
		s.epoch++
		s.retractAll()
		s.apply()
	}
}

// now 返回调度器时钟
func (s *Sequencer) now() float64 {
	return s.sched.Now()
}

// after 排程一个纪元守卫的回调，延迟按当前速度缩放
func (s *Sequencer) after(delay float64, fn func()) {
	epoch := s.epoch
	s.sched.After(delay/s.speed, func() {
		if s.epoch != epoch {
			return // 过期回调：效果已切换，放弃
		}
		fn()
	})
}

// apply 应用当前效果
func (s *Sequencer) apply() {
	switch s.current {
	case EffectFade:
		s.applyFade()
	case EffectTypewriter:
		s.applyTypewriter()
	case EffectMorph:
		s.applyMorphLike(ClassMorph)
	case EffectScale:
		s.applyMorphLike(ClassScalePop)
	case EffectRotate:
		s.applyRotate()
	case EffectCombined:
		s.applyCombined()
	}
}

// retractAll 撤销上一效果的全部残留
//
// 清除动画类与样式覆盖，并把被破坏性改写过的文字按暂存的
// 原文逐字节还原。暂存保留，捕获守卫保证不会被重复覆盖。
func (s *Sequencer) retractAll() {
	for _, tgt := range s.targets.All() {
		if tgt == nil {
			continue
		}
		tgt.ResetVisual()
		if original, ok := tgt.Data(dataOriginalText); ok {
			tgt.Text = original
		}
	}
}

// captureOriginal 懒捕获目标的原始文字
//
// 只在第一次破坏性改写前捕获一次；已捕获过的不再覆盖，
// 保证多轮捕获-还原不会叠包或丢失原文。
func captureOriginal(tgt *Target) {
	if tgt == nil {
		return
	}
	if _, ok := tgt.Data(dataOriginalText); ok {
		return
	}
	tgt.SetData(dataOriginalText, tgt.Text)
}
