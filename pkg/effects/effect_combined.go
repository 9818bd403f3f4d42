package effects

import "github.com/decker502/greeting/pkg/config"

// applyCombined 组合效果
//
// 标题与图标获得组合动画类，副标题在 +300ms、正文在 +600ms
// 淡入上移。
func (s *Sequencer) applyCombined() {
	if title := s.targets.Title; title != nil {
		title.AddClass(ClassCombined, s.now())
	}
	if icon := s.targets.Icon; icon != nil {
		icon.AddClass(ClassCombined, s.now())
	}

	if subtitle := s.targets.Subtitle; subtitle != nil {
		subtitle.Alpha = 0
		s.after(config.CombinedSubtitleDelay, func() {
			subtitle.Alpha = 1
			subtitle.AddClass(ClassFadeUp, s.now())
		})
	}
	if message := s.targets.Message; message != nil {
		message.Alpha = 0
		s.after(config.CombinedMessageDelay, func() {
			message.Alpha = 1
			message.AddClass(ClassFadeUp, s.now())
		})
	}
}
