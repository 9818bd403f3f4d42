package effects

import "github.com/decker502/greeting/pkg/config"

// applyTypewriter 打字机效果
//
// 标题逐字 50ms，副标题在标题预计完成后 +500ms 开始、逐字 40ms，
// 正文在标题+副标题预计完成后 +1000ms 开始、逐词元出现。
// 三个目标的原文在首次改写前懒捕获一次，撤销时逐字节还原。
func (s *Sequencer) applyTypewriter() {
	title := s.targets.Title
	subtitle := s.targets.Subtitle
	message := s.targets.Message

	captureOriginal(title)
	captureOriginal(subtitle)
	captureOriginal(message)

	titleRunes := targetRunes(title)
	subtitleRunes := targetRunes(subtitle)

	// 预计完成时间按未缩放延迟计算；after 统一除以速度倍率，
	// 所以整条时间线随速度等比伸缩
	titleDur := float64(len(titleRunes)) * config.TypeTitleCharDelay
	subtitleStart := titleDur + config.TypeSubtitleBuffer
	subtitleDur := float64(len(subtitleRunes)) * config.TypeSubtitleCharDelay
	messageStart := subtitleStart + subtitleDur + config.TypeMessageBuffer

	clearText(title)
	clearText(subtitle)
	clearText(message)

	s.typeRunes(title, titleRunes, config.TypeTitleCharDelay, 0)
	s.typeRunes(subtitle, subtitleRunes, config.TypeSubtitleCharDelay, subtitleStart)

	if message != nil {
		original, _ := message.Data(dataOriginalText)
		s.typeTokens(message, TokenizeMessage(original), messageStart)
	}
}

// typeRunes 逐字重现目标文字
//
// 每个字符由上一个字符的回调显式排程（延迟链，非固定间隔），
// 第一个字符在 startDelay 之后一个字符间隔出现。
func (s *Sequencer) typeRunes(tgt *Target, runes []rune, charDelay, startDelay float64) {
	if tgt == nil || len(runes) == 0 {
		return
	}

	var step func(i int)
	step = func(i int) {
		if i >= len(runes) {
			return
		}
		tgt.Text += string(runes[i])
		s.after(charDelay, func() { step(i + 1) })
	}

	s.after(startDelay+charDelay, func() { step(0) })
}

// typeTokens 逐词元重现正文
//
// 词词元带淡入动画，间隔 25ms；换行词元插入字面换行，间隔 50ms；
// 纯空白词元快速跳过（10ms），无可见动画。
func (s *Sequencer) typeTokens(tgt *Target, tokens []Token, startDelay float64) {
	if tgt == nil || len(tokens) == 0 {
		return
	}

	var step func(i int)
	step = func(i int) {
		if i >= len(tokens) {
			return
		}
		tok := tokens[i]
		tgt.Text += tok.Literal
		if tok.Kind == TokenWord {
			tgt.AddClass(ClassTokenFade, s.now())
		}
		s.after(tokenDelay(tok.Kind), func() { step(i + 1) })
	}

	s.after(startDelay, func() { step(0) })
}

// tokenDelay 返回词元类型对应的出现间隔
func tokenDelay(kind TokenKind) float64 {
	switch kind {
	case TokenBreak:
		return config.TypeBreakDelay
	case TokenSpace:
		return config.TypeSpaceDelay
	default:
		return config.TypeWordDelay
	}
}

// targetRunes 返回目标暂存原文的字符序列
func targetRunes(tgt *Target) []rune {
	if tgt == nil {
		return nil
	}
	original, ok := tgt.Data(dataOriginalText)
	if !ok {
		original = tgt.Text
	}
	return []rune(original)
}

// clearText 清空目标文字（打字机起点）
func clearText(tgt *Target) {
	if tgt == nil {
		return
	}
	tgt.Text = ""
}
