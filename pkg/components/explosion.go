package components

// ExplosionComponent 命中后的爆炸特效
//
// 帧动画数据在 SpriteAnimationComponent 中，Frame 超过其 MaxFrame 时实体被删除。
type ExplosionComponent struct {
	Size        float64 // 绘制边长（等于被击中乌鸦的宽度）
	SoundID     string  // 第一次更新时播放的音效
	SoundPlayed bool
}
