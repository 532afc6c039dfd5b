package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/decker502/ravens/pkg/embedded"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	fallbackSampleRate = beep.SampleRate(44100)
	fallbackBoomHz     = 110
	fallbackBoomLength = 150 * time.Millisecond
)

// beepPlayer 通过 beep 扬声器播放爆炸声
//
// 有 wav 文件时播放解码后的缓冲；否则播放一段低频正弦音。
// PlaySound 的签名与 systems.SoundPlayer 一致。
type beepPlayer struct {
	boom   *beep.Buffer
	rate   beep.SampleRate
	volume float64
}

// newBeepPlayer 解码 wav 并初始化扬声器
// boomPath 为空或解码失败时使用正弦音
func newBeepPlayer(boomPath string, volume float64) (*beepPlayer, error) {
	p := &beepPlayer{rate: fallbackSampleRate, volume: volume}

	if boomPath != "" {
		buf, err := loadWav(boomPath)
		if err != nil {
			log.Printf("[Sound] Warning: %v, using sine fallback", err)
		} else {
			p.boom = buf
			p.rate = buf.Format().SampleRate
		}
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return p, nil
}

func loadWav(path string) (*beep.Buffer, error) {
	f, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	return buf, nil
}

// PlaySound 播放一次爆炸声
func (p *beepPlayer) PlaySound(soundID string) bool {
	var s beep.Streamer
	if p.boom != nil {
		s = p.boom.Streamer(0, p.boom.Len())
	} else {
		sine, err := generators.SineTone(p.rate, fallbackBoomHz)
		if err != nil {
			log.Printf("[Sound] Warning: sine generator failed: %v", err)
			return false
		}
		s = beep.Take(p.rate.N(fallbackBoomLength), sine)
	}

	speaker.Play(withVolume(s, p.volume))
	return true
}

// Close 关闭扬声器
func (p *beepPlayer) Close() {
	speaker.Close()
}

// withVolume 线性音量转为 effects.Volume 的对数音量
// math.Log2(0) 为 -Inf，0 音量直接静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
