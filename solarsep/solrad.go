package solarsep

import (
	"fmt"
	"math"
	"strings"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// 直散分離計算
//--------------------------------------

// 太陽定数 [W/m2]
const Gsc = 1360.8

// 直散分離の方法
type SeparationMethod int

const (
	MethodErbs SeparationMethod = iota
	MethodOrgill
	MethodReindl1
	MethodReindl2
	MethodCombined
)

// 方法名の文字列から直散分離の方法を取得します。
// 大文字小文字を区別せず、"Reindl.1"、"Reindl.2" の表記も受け付けます。
// 未知の名前の場合は ErrUnsupportedMethod を返します。
func ParseSeparationMethod(name string) (SeparationMethod, error) {
	switch strings.ToLower(name) {
	case "erbs":
		return MethodErbs, nil
	case "orgill":
		return MethodOrgill, nil
	case "reindl1", "reindl.1":
		return MethodReindl1, nil
	case "reindl2", "reindl.2":
		return MethodReindl2, nil
	case "combined":
		return MethodCombined, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedMethod, name)
}

// 数値コード(0=Erbs, 1=Orgill, 2=Reindl.1, 3=Reindl.2, 4=Combined)から
// 直散分離の方法を取得します。
func SeparationMethodFromCode(code int) (SeparationMethod, error) {
	if code < int(MethodErbs) || code > int(MethodCombined) {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedMethod, code)
	}
	return SeparationMethod(code), nil
}

func (m SeparationMethod) String() string {
	switch m {
	case MethodErbs:
		return "Erbs"
	case MethodOrgill:
		return "Orgill"
	case MethodReindl1:
		return "Reindl.1"
	case MethodReindl2:
		return "Reindl.2"
	case MethodCombined:
		return "Combined"
	}
	return fmt.Sprintf("SeparationMethod(%d)", int(m))
}

// 直散分離結果
type SeparationResult struct {
	DHI []float64 //水平面拡散日射量 (単位:W/m2)
	DNI []float64 //法線面直達日射量 (単位:W/m2)

	//中間列(keep_intermediate指定時のみ)
	Ge []float64 //大気外日射量 (単位:W/m2)
	Kt []float64 //晴天指数
	Kd []float64 //拡散比
}

// """水平面全天日射量の直散分離を行う
// Args:
//
//	data(*SolarData): 入力データ(変更されない)
//	method(SeparationMethod): 直散分離の方法
//	zenith_max(float64): 天頂角の上限[°] これを超える行は夜間として扱う
//	keep_intermediate(bool): 中間列(Ge,Kt,Kd)を結果に残すかどうか
//
// Returns:
//
//	*SeparationResult: 直散分離結果
//	                   有効な行では GHI = DHI + DNI*cosθ が厳密に成立する
//
// """
func Decompose(data *SolarData, method SeparationMethod, zenith_max float64, keep_intermediate bool) (*SeparationResult, error) {
	if data.Yday == nil {
		return nil, fmt.Errorf("%w: yday", ErrMissingColumn)
	}
	if data.GHI == nil {
		return nil, fmt.Errorf("%w: GHI", ErrMissingColumn)
	}
	if data.Zenith == nil {
		return nil, fmt.Errorf("%w: zenith", ErrMissingColumn)
	}
	n := len(data.Yday)
	if len(data.GHI) != n || len(data.Zenith) != n || (data.Beam != nil && len(data.Beam) != n) {
		return nil, fmt.Errorf("列の長さが一致しません")
	}

	logger := logging.GetLogger("solarsep")
	logger.Debugf("直散分離を実行します: method=%s, 行数=%d", method, n)

	// 大気外日射量
	Ge := get_Ge(data.Yday)

	// 天頂角の余弦と有効フラグ
	cos_zenith := get_cos_zenith(data.Zenith)
	zz := get_valid_mask(data.Zenith, data.Beam, zenith_max)

	// 晴天指数
	Kt := get_Kt(data.GHI, Ge, cos_zenith, zz)

	// 拡散比
	Kd, err := get_Kd(method, Kt, cos_zenith, zz)
	if err != nil {
		return nil, err
	}

	// 水平面拡散日射量と法線面直達日射量
	// DNIを残差 (GHI-DHI)/cosθ から求めることで GHI = DHI + DNI*cosθ が
	// 丸め誤差によらず厳密に成立する
	DHI := make([]float64, n)
	DNI := make([]float64, n)
	for i := 0; i < n; i++ {
		DHI[i] = data.GHI[i] * Kd[i]
		if zz[i] {
			DNI[i] = (data.GHI[i] - DHI[i]) / cos_zenith[i]
		}
	}

	res := SeparationResult{DHI: DHI, DNI: DNI}
	if keep_intermediate {
		res.Ge = Ge
		res.Kt = Kt
		res.Kd = Kd
	}
	return &res, nil
}

// 年間通日 yday から大気外日射量 Ge [W/m2] を計算
// yday の範囲は検証しない
func get_Ge(yday []int) []float64 {
	Ge := make([]float64, len(yday))
	for i := 0; i < len(yday); i++ {
		Ge[i] = Gsc * (1 + 0.033*math.Cos(degreeToRad(360.0*float64(yday[i])/365.0)))
	}
	return Ge
}

// 天頂角[°]の余弦を計算
func get_cos_zenith(zenith []float64) []float64 {
	cos_zenith := make([]float64, len(zenith))
	for i := 0; i < len(zenith); i++ {
		cos_zenith[i] = math.Cos(degreeToRad(zenith[i]))
	}
	return cos_zenith
}

// 有効フラグ zz の計算
// 天頂角が zenith_max 以下、かつ beam が指定されている場合は beam が真の行のみ有効
func get_valid_mask(zenith []float64, beam []bool, zenith_max float64) []bool {
	zz := make([]bool, len(zenith))
	for i := 0; i < len(zenith); i++ {
		zz[i] = zenith[i] <= zenith_max && (beam == nil || beam[i])
	}
	return zz
}

// 晴天指数 Kt の計算
// 無効な行では cosθ が0に近く除算が発散するため、計算せずに0とする
func get_Kt(GHI []float64, Ge []float64, cos_zenith []float64, zz []bool) []float64 {
	Kt := make([]float64, len(GHI))
	for i := 0; i < len(GHI); i++ {
		if !zz[i] {
			continue
		}

		kt := GHI[i] / Ge[i] / cos_zenith[i]

		// [0,1]にクランプ
		if kt < 0 {
			kt = 0
		} else if kt > 1 {
			kt = 1
		}
		Kt[i] = kt
	}
	return Kt
}

// 晴天指数 Kt から拡散比 Kd を計算
// 計算式は method により切り替える
func get_Kd(method SeparationMethod, Kt []float64, cos_zenith []float64, zz []bool) ([]float64, error) {
	var Kd []float64
	switch method {
	case MethodErbs:
		Kd = get_Kd_Erbs(Kt)
	case MethodReindl2:
		Kd = get_Kd_Reindl2(Kt, cos_zenith)
	case MethodCombined:
		Kd = get_Kd_Combined(Kt, cos_zenith)
	case MethodOrgill, MethodReindl1:
		// 採用する係数が公開されていないため未実装
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMethod, int(method))
	}

	// 全ての方法に共通の後処理
	// [0,1]にクランプし、無効な行(日没後など)は全て拡散成分とみなす
	for i := 0; i < len(Kd); i++ {
		if !zz[i] {
			Kd[i] = 1
		} else if Kd[i] > 1 {
			Kd[i] = 1
		} else if Kd[i] < 0 {
			Kd[i] = 0
		}
	}

	return Kd, nil
}

// Erbsモデルによる拡散比の計算
func get_Kd_Erbs(Kt []float64) []float64 {
	Kd := make([]float64, len(Kt))
	for i := 0; i < len(Kt); i++ {
		kt := Kt[i]
		if kt < 0.22 {
			Kd[i] = 1 - 0.09*kt
		} else if kt <= 0.8 {
			Kd[i] = 0.9511 - 0.1604*kt + 4.388*kt*kt - 16.638*kt*kt*kt + 12.336*kt*kt*kt*kt
		} else {
			Kd[i] = 0.165
		}
	}
	return Kd
}

// Reindl.2モデル(天頂角考慮)による拡散比の計算
func get_Kd_Reindl2(Kt []float64, cos_zenith []float64) []float64 {
	Kd := make([]float64, len(Kt))
	for i := 0; i < len(Kt); i++ {
		kt := Kt[i]
		if kt <= 0.3 {
			Kd[i] = 1.02 - 0.254*kt + 0.0123*cos_zenith[i]
		} else if kt < 0.78 {
			Kd[i] = 1.4 - 1.749*kt + 0.177*cos_zenith[i]
		} else {
			Kd[i] = 0.486*kt - 0.182*cos_zenith[i]
		}
	}
	return Kd
}

// Combinedモデル(既定)による拡散比の計算
// 下限値0.17を下回らない
func get_Kd_Combined(Kt []float64, cos_zenith []float64) []float64 {
	Kd := make([]float64, len(Kt))
	for i := 0; i < len(Kt); i++ {
		kt := Kt[i]
		if kt <= 0.22 {
			Kd[i] = 1
		} else {
			kd := 1.4 - 1.749*kt + 0.177*cos_zenith[i]
			if kd < 0.17 {
				kd = 0.17
			}
			Kd[i] = kd
		}
	}
	return Kd
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
