package suggester

import "math"

var qwertyRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[byte][2]int {
	m := make(map[byte][2]int)
	for row, letters := range qwertyRows {
		for col := 0; col < len(letters); col++ {
			m[letters[col]] = [2]int{row, col}
		}
	}
	return m
}()

// keyboardSentinelDistance is returned for characters outside the mapped
// QWERTY layout.
const keyboardSentinelDistance = 10.0

// KeyboardDistance returns the Euclidean distance between a and b's QWERTY
// key positions. It is available for callers that want a keyboard-aware
// substitution cost but is not used by the default ranking formula.
func KeyboardDistance(a, b byte) float64 {
	pa, oka := keyPos[lowerByte(a)]
	pb, okb := keyPos[lowerByte(b)]
	if !oka || !okb {
		return keyboardSentinelDistance
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
