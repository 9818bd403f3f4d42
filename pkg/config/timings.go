package config

// 阶段与效果时序常量
//
// 所有时长单位为秒。效果内部的延迟在 EffectSequencer 中
// 除以播放速度倍率后生效。

const (
	// TotalStages 贺卡阶段总数
	TotalStages = 3

	// Stage2At 阶段 1→2 的切换时刻（从场景构造起计）
	Stage2At float64 = 3.0

	// Stage3At 阶段 2→3 的切换时刻（从场景构造起计，与 Stage2At 相互独立）
	Stage3At float64 = 7.0

	// PanelFadeDuration 阶段面板淡入时长
	PanelFadeDuration float64 = 0.8
)

const (
	// FadeStagger fade 效果每个文字目标的错峰延迟
	FadeStagger float64 = 0.3

	// FadeDuration fade 效果单个目标的淡入时长
	FadeDuration float64 = 0.8

	// IconPulsePeriod 图标脉冲动画周期
	IconPulsePeriod float64 = 1.2
)

const (
	// TypeTitleCharDelay 打字机效果标题的逐字间隔
	TypeTitleCharDelay float64 = 0.05

	// TypeSubtitleCharDelay 打字机效果副标题的逐字间隔
	TypeSubtitleCharDelay float64 = 0.04

	// TypeSubtitleBuffer 标题打完到副标题开始的缓冲
	TypeSubtitleBuffer float64 = 0.5

	// TypeMessageBuffer 标题+副标题预计完成到正文开始的缓冲
	TypeMessageBuffer float64 = 1.0

	// TypeWordDelay 正文逐词出现的间隔（词元）
	TypeWordDelay float64 = 0.025

	// TypeBreakDelay 正文换行词元的间隔
	TypeBreakDelay float64 = 0.05

	// TypeSpaceDelay 纯空白词元的间隔（快速跳过，无可见动画）
	TypeSpaceDelay float64 = 0.01
)

const (
	// MorphFadeDuration morph/scale 效果中副标题与正文共用的淡入时长
	MorphFadeDuration float64 = 1.5

	// RotateStagger rotate 效果文字目标的错峰延迟
	RotateStagger float64 = 0.2

	// CombinedSubtitleDelay combined 效果副标题的延迟
	CombinedSubtitleDelay float64 = 0.3

	// CombinedMessageDelay combined 效果正文的延迟
	CombinedMessageDelay float64 = 0.6
)

const (
	// ResizeDebounce 窗口尺寸变化后的静默期，超过后粒子系统重建
	ResizeDebounce float64 = 0.25
)

// 渲染侧动画类的呈现参数，由场景在绘制时解读
const (
	// FadeUpOffset 淡入上移动画的初始向下偏移（像素）
	FadeUpOffset float64 = 24.0

	// SpinPeriod spin 动画类一整圈的周期
	SpinPeriod float64 = 3.0

	// ScalePopDuration scale 动画类从小到大弹出的时长
	ScalePopDuration float64 = 0.9

	// MorphColorPeriod morph 动画类在调色板中循环一轮的周期
	MorphColorPeriod float64 = 4.0

	// TokenFadeDuration 正文最新词元的淡入时长
	TokenFadeDuration float64 = 0.2

	// CombinedWobblePeriod combined 动画类的摆动周期
	CombinedWobblePeriod float64 = 2.4
)
