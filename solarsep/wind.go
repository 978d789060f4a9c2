package solarsep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

//--------------------------------------
// 風速・風力計算
//--------------------------------------

// """パワーカーブの区分線形補間により風速からキャパシティファクタを計算する
// Args:
//
//	speed([]float64): ハブ高さの風速 (単位:m/s)
//	cutin(float64): カットイン風速 (単位:m/s)
//	cutoff(float64): カットオフ風速 (単位:m/s)
//	curve_speed([]float64): パワーカーブの風速列 (単位:m/s, 狭義単調増加)
//	curve_cf([]float64): パワーカーブのキャパシティファクタ列 (0～1)
//
// Returns:
//
//	[]float64: キャパシティファクタ
//	           cutin 未満および cutoff 超の風速では0
//	           風速が NaN の行は NaN のまま伝播する
//
// """
func WindPowerCurve(speed []float64, cutin float64, cutoff float64, curve_speed []float64, curve_cf []float64) ([]float64, error) {
	if len(curve_speed) != len(curve_cf) {
		return nil, fmt.Errorf("パワーカーブの列の長さが一致しません: %d != %d", len(curve_speed), len(curve_cf))
	}
	if len(curve_speed) < 2 {
		return nil, fmt.Errorf("パワーカーブには2点以上が必要です")
	}
	for i := 1; i < len(curve_speed); i++ {
		if curve_speed[i] <= curve_speed[i-1] {
			return nil, fmt.Errorf("パワーカーブの風速列が増加していません: %f, %f", curve_speed[i-1], curve_speed[i])
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(curve_speed, curve_cf); err != nil {
		return nil, err
	}

	cf := make([]float64, len(speed))
	for i := 0; i < len(speed); i++ {
		v := speed[i]
		if math.IsNaN(v) {
			cf[i] = math.NaN()
		} else if v < cutin || v > cutoff {
			cf[i] = 0
		} else {
			cf[i] = pl.Predict(v)
		}
	}
	return cf, nil
}

// """高さ10mと50mの風速の対数比からヘルマン指数を計算する
// Args:
//
//	speed10([]float64): 高さ10mの風速 (単位:m/s)
//	speed50([]float64): 高さ50mの風速 (単位:m/s)
//	lo(float64): 指数の下限
//	up(float64): 指数の上限
//	na(float64): 計算結果が NaN または ±Inf の場合の置換値
//
// Returns:
//
//	[]float64: ヘルマン指数 ([lo,up]にクランプ)
//
// """
func HellmannExponent(speed10 []float64, speed50 []float64, lo float64, up float64, na float64) []float64 {
	alpha := make([]float64, len(speed10))
	for i := 0; i < len(speed10); i++ {
		a := math.Log(speed50[i]/speed10[i]) / math.Log(50.0/10.0)

		if math.IsNaN(a) || math.IsInf(a, 0) {
			// 風速0や欠測では対数比が計算できない
			a = na
		} else if a < lo {
			a = lo
		} else if a > up {
			a = up
		}

		alpha[i] = a
	}
	return alpha
}

// べき法則による風速の高さ補正
// 高さ10mの風速 speed10 とヘルマン指数 alpha から高さ height[m] の風速を計算
func ExtrapolateWindSpeed(height float64, speed10 []float64, alpha []float64) []float64 {
	speed := make([]float64, len(speed10))
	ratio := height / 10.0
	for i := 0; i < len(speed10); i++ {
		speed[i] = speed10[i] * math.Pow(ratio, alpha[i])
	}
	return speed
}
