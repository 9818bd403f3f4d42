package effects

// applyMorphLike 形变/缩放效果的公共骨架
//
// morph 和 scale 只差标题与图标的动画类，其余语义相同：
// 副标题和正文共用一个 1.5s 的原位淡入。
func (s *Sequencer) applyMorphLike(class string) {
	if title := s.targets.Title; title != nil {
		title.AddClass(class, s.now())
	}
	if icon := s.targets.Icon; icon != nil {
		icon.AddClass(class, s.now())
	}
	if subtitle := s.targets.Subtitle; subtitle != nil {
		subtitle.AddClass(ClassFadeIn, s.now())
	}
	if message := s.targets.Message; message != nil {
		message.AddClass(ClassFadeIn, s.now())
	}
}
