package effects

import "github.com/decker502/greeting/pkg/config"

// applyRotate 旋转效果
//
// 只有图标获得持续旋转，三个文字目标以 200ms 错峰淡入上移。
func (s *Sequencer) applyRotate() {
	if icon := s.targets.Icon; icon != nil {
		icon.AddClass(ClassSpin, s.now())
	}

	for i, tgt := range s.targets.TextTargets() {
		if tgt == nil {
			continue
		}
		tgt.Alpha = 0
		delay := config.RotateStagger * float64(i)
		s.after(delay, func() {
			tgt.Alpha = 1
			tgt.AddClass(ClassFadeUp, s.now())
		})
	}
}
