// Package effects implements the mutually exclusive presentation
// effects applied to the greeting card's four text targets (title,
// subtitle, message, icon): fade, typewriter, morph, scale, rotate
// and combined.
//
// 效果只改写目标的状态（文字、透明度、动画类），
// 真正的绘制由场景每帧根据目标状态完成。
package effects

// TargetRole 四个文字目标的逻辑角色
type TargetRole int

const (
	// RoleTitle 标题
	RoleTitle TargetRole = iota
	// RoleSubtitle 副标题
	RoleSubtitle
	// RoleMessage 正文（可含换行）
	RoleMessage
	// RoleIcon 装饰图标
	RoleIcon
)

// 动画类名
//
// 对应 CSS class 的概念：持续类（pulse/spin/morph…）由渲染方
// 按类的起始时间逐帧求值，一次性类（fade-up/fade-in）播放到
// 结束后停在终点。
const (
	// ClassFadeUp 从下方偏移淡入
	ClassFadeUp = "fade-up"
	// ClassFadeIn 原位淡入（morph/scale 效果中副标题与正文共用）
	ClassFadeIn = "fade-in"
	// ClassPulse 图标持续脉冲
	ClassPulse = "pulse"
	// ClassSpin 图标持续旋转
	ClassSpin = "spin"
	// ClassMorph 标题与图标的形变动画
	ClassMorph = "morph"
	// ClassScalePop 标题与图标的缩放弹出动画
	ClassScalePop = "scale-pop"
	// ClassCombined 组合动画（缩放+旋转+淡入）
	ClassCombined = "combined"
	// ClassTokenFade 打字机逐词出现时最后一个词的淡入
	ClassTokenFade = "token-fade"
)

// dataOriginalText 原始文字的暂存键（打字机效果破坏性改写前捕获）
const dataOriginalText = "originalText"

// Target 单个文字目标的可变状态
//
// 效果序列器改写这些字段，场景按字段绘制。
// 缺失的目标在 TargetSet 中为 nil，所有操作对 nil 目标都是空操作。
type Target struct {
	// Text 当前显示的文字
	Text string

	// Alpha 基础透明度（动画类在此之上做调制）
	Alpha float64

	// OffsetY 垂直偏移（动画类的静态残留，通常为 0）
	OffsetY float64

	// Scale 缩放倍率
	Scale float64

	// Angle 旋转角（弧度）
	Angle float64

	classes map[string]float64 // 动画类名 → 添加时刻（调度器时钟）
	data    map[string]string  // 通用键值暂存（如原始文字）
}

// NewTarget 创建一个显示 text 的目标，初始为静止完全可见状态
func NewTarget(text string) *Target {
	return &Target{
		Text:    text,
		Alpha:   1,
		Scale:   1,
		classes: make(map[string]float64),
		data:    make(map[string]string),
	}
}

// AddClass 添加动画类并记录起始时刻；重复添加会刷新起始时刻
func (t *Target) AddClass(name string, at float64) {
	if t == nil {
		return
	}
	t.classes[name] = at
}

// RemoveClass 移除动画类
func (t *Target) RemoveClass(name string) {
	if t == nil {
		return
	}
	delete(t.classes, name)
}

// HasClass 返回目标是否带有指定动画类
func (t *Target) HasClass(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.classes[name]
	return ok
}

// ClassStart 返回动画类的起始时刻；类不存在时第二个返回值为 false
func (t *Target) ClassStart(name string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	at, ok := t.classes[name]
	return at, ok
}

// ClearClasses 移除全部动画类
func (t *Target) ClearClasses() {
	if t == nil {
		return
	}
	for name := range t.classes {
		delete(t.classes, name)
	}
}

// SetData 写入键值暂存
func (t *Target) SetData(key, value string) {
	if t == nil {
		return
	}
	t.data[key] = value
}

// Data 读取键值暂存
func (t *Target) Data(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.data[key]
	return v, ok
}

// ResetVisual 清除动画类和样式残留，恢复静止完全可见状态
//
// 不触碰 Text 和键值暂存：文字恢复由序列器按暂存的原文处理。
func (t *Target) ResetVisual() {
	if t == nil {
		return
	}
	t.ClearClasses()
	t.Alpha = 1
	t.OffsetY = 0
	t.Scale = 1
	t.Angle = 0
}

// TargetSet 四个角色到目标的固定映射
//
// 构造时解析一次并注入序列器，之后不再做任何环境查找。
// 某个角色缺失（nil）时，作用于它的操作全部退化为空操作。
type TargetSet struct {
	Title    *Target
	Subtitle *Target
	Message  *Target
	Icon     *Target
}

// NewTargetSet 从四段文字构建目标集合
func NewTargetSet(title, subtitle, message, icon string) *TargetSet {
	return &TargetSet{
		Title:    NewTarget(title),
		Subtitle: NewTarget(subtitle),
		Message:  NewTarget(message),
		Icon:     NewTarget(icon),
	}
}

// ByRole 按角色取目标，未知角色返回 nil
func (ts *TargetSet) ByRole(role TargetRole) *Target {
	if ts == nil {
		return nil
	}
	switch role {
	case RoleTitle:
		return ts.Title
	case RoleSubtitle:
		return ts.Subtitle
	case RoleMessage:
		return ts.Message
	case RoleIcon:
		return ts.Icon
	default:
		return nil
	}
}

// TextTargets 返回三个文字目标（按错峰下标顺序：标题、副标题、正文）
//
// 返回的切片保留 nil 占位，保证缺失目标不影响其他目标的错峰序号。
func (ts *TargetSet) TextTargets() []*Target {
	if ts == nil {
		return nil
	}
	return []*Target{ts.Title, ts.Subtitle, ts.Message}
}

// All 返回全部四个目标（含 nil 占位）
func (ts *TargetSet) All() []*Target {
	if ts == nil {
		return nil
	}
	return []*Target{ts.Title, ts.Subtitle, ts.Message, ts.Icon}
}
