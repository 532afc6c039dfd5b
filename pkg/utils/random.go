package utils

import "math/rand"

// RandRange 返回 [min, min+span) 内的随机数
func RandRange(rng *rand.Rand, min, span float64) float64 {
	return min + rng.Float64()*span
}

// RandCentered 返回 [-span/2, span/2) 内的随机数
func RandCentered(rng *rand.Rand, span float64) float64 {
	return rng.Float64()*span - span/2
}
