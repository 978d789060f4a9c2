package solarsep

import "errors"

// 必要な入力列が存在しない場合のエラー
var ErrMissingColumn = errors.New("列が存在しません")

// 未対応の直散分離の方法が指定された場合のエラー
var ErrUnsupportedMethod = errors.New("未対応の直散分離の方法です")

// 直散分離の入力データ
// 各スライスは同じ長さを持ち、行の並びが時刻順を表す
type SolarData struct {
	Yday   []int     //1.年間通日 (1～366)
	GHI    []float64 //2.水平面全天日射量 (単位:W/m2)
	Zenith []float64 //3.太陽天頂角 (単位:°)

	//有効フラグ(省略可)
	//nilの場合は全行を有効として扱う
	Beam []bool
}

// 行数を返します。
func (data *SolarData) Len() int {
	return len(data.Yday)
}

// 開始行 start から 終了行 end (endは含まない)のデータを抜き出して新しい構造体を作成します。
func (data *SolarData) ExtractRange(start int, end int) *SolarData {
	extracted := SolarData{
		Yday:   append([]int{}, data.Yday[start:end]...),
		GHI:    append([]float64{}, data.GHI[start:end]...),
		Zenith: append([]float64{}, data.Zenith[start:end]...),
	}
	if data.Beam != nil {
		extracted.Beam = append([]bool{}, data.Beam[start:end]...)
	}
	return &extracted
}
