package main

import "math"

// viewport 世界坐标（游戏逻辑像素）与终端单元格之间的换算
//
// 一个单元格代表世界中 worldW/cols × worldH/rows 的区域，
// 单元格中心落在物体包围盒内时该单元格属于这个物体，
// 因此点击任何画出来的单元格都会命中对应的乌鸦。
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

func (v viewport) cellW() float64 { return v.worldW / float64(v.cols) }
func (v viewport) cellH() float64 { return v.worldH / float64(v.rows) }

// toWorld 返回单元格中心的世界坐标
func (v viewport) toWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * v.cellW(), (float64(row) + 0.5) * v.cellH()
}

// toCell 返回包含世界坐标的单元格
func (v viewport) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / v.cellW())), int(math.Floor(y / v.cellH()))
}

// cells 返回中心落在 [x, x+w) × [y, y+h) 内的单元格范围（右下开区间），已裁剪到屏幕
func (v viewport) cells(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0 = int(math.Ceil(x/v.cellW() - 0.5))
	r0 = int(math.Ceil(y/v.cellH() - 0.5))
	c1 = int(math.Ceil((x+w)/v.cellW() - 0.5))
	r1 = int(math.Ceil((y+h)/v.cellH() - 0.5))

	c0 = clampInt(c0, 0, v.cols)
	c1 = clampInt(c1, 0, v.cols)
	r0 = clampInt(r0, 0, v.rows)
	r1 = clampInt(r1, 0, v.rows)
	return
}

func (v viewport) valid() bool {
	return v.cols > 0 && v.rows > 0 && v.worldW > 0 && v.worldH > 0
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
