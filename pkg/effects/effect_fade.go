package effects

import "github.com/decker502/greeting/pkg/config"

// applyFade 错峰淡入效果
//
// 三个文字目标按下标以 300ms 错峰淡入上移，图标获得持续脉冲。
// 缺失的目标跳过，但不影响其他目标的错峰序号。
func (s *Sequencer) applyFade() {
	for i, tgt := range s.targets.TextTargets() {
		if tgt == nil {
			continue
		}
		tgt.Alpha = 0
		delay := config.FadeStagger * float64(i)
		s.after(delay, func() {
			tgt.Alpha = 1
			tgt.AddClass(ClassFadeUp, s.now())
		})
	}

	if icon := s.targets.Icon; icon != nil {
		icon.AddClass(ClassPulse, s.now())
	}
}
