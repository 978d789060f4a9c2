package solarsep

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// CSV読み込みのテスト
// 列の並び順はヘッダから解決される
func Test_ReadSolarCSV(t *testing.T) {
	csv := "zenith,extra,GHI,yday,beam\n" +
		"30.5,x,800,172,1\n" +
		"95.0,y,120.5,173,0\n"

	data, err := ReadSolarCSV(strings.NewReader(csv), ColumnConfig{
		Yday:   "yday",
		GHI:    "GHI",
		Zenith: "zenith",
		Beam:   "beam",
	})
	assert.NoError(t, err)

	assert.Equal(t, 2, data.Len())
	assert.Equal(t, []int{172, 173}, data.Yday)
	assert.Equal(t, []float64{800, 120.5}, data.GHI)
	assert.Equal(t, []float64{30.5, 95.0}, data.Zenith)
	assert.Equal(t, []bool{true, false}, data.Beam)
}

// 有効フラグ列を指定しない場合のテスト
func Test_ReadSolarCSV_NoBeam(t *testing.T) {
	csv := "yday,GHI,zenith\n172,800,30\n"

	data, err := ReadSolarCSV(strings.NewReader(csv), DefaultColumns())
	assert.NoError(t, err)
	assert.Nil(t, data.Beam)
}

// 必要な列が無い場合のテスト
// 行の読み込み前にエラーとなる
func Test_ReadSolarCSV_MissingColumn(t *testing.T) {
	csv := "yday,GHI\n172,800\n"

	data, err := ReadSolarCSV(strings.NewReader(csv), DefaultColumns())
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "zenith")
}

// 数値として解釈できない値のテスト
func Test_ReadSolarCSV_BadValue(t *testing.T) {
	csv := "yday,GHI,zenith\n172,abc,30\n"

	_, err := ReadSolarCSV(strings.NewReader(csv), DefaultColumns())
	assert.Error(t, err)
}

// gzip圧縮されたCSVの読み込みのテスト
func Test_LoadSolarCSV_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("yday,GHI,zenith\n172,800,30\n"))
	gz.Close()
	assert.NoError(t, os.WriteFile(path, buf.Bytes(), os.ModePerm))

	data, err := LoadSolarCSV(path, DefaultColumns())
	assert.NoError(t, err)
	assert.Equal(t, []int{172}, data.Yday)
	assert.Equal(t, []float64{800}, data.GHI)
}

// CSV出力のテスト
func Test_ToCSV(t *testing.T) {
	data := SolarData{
		Yday:   []int{5},
		GHI:    []float64{400},
		Zenith: []float64{30},
	}
	res := SeparationResult{
		DHI: []float64{100},
		DNI: []float64{200},
	}

	var buf bytes.Buffer
	data.ToCSV(&buf, &res)

	assert.Equal(t, "yday,GHI,zenith,DHI,DNI\n5,400,30,100,200\n", buf.String())
}

// 中間列付きCSV出力のテスト
func Test_ToCSV_Intermediate(t *testing.T) {
	data := SolarData{
		Yday:   []int{172},
		GHI:    []float64{800},
		Zenith: []float64{30},
		Beam:   []bool{true},
	}

	res, err := Decompose(&data, MethodCombined, 89, true)
	assert.NoError(t, err)

	var buf bytes.Buffer
	data.ToCSV(&buf, res)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "yday,GHI,zenith,beam,Ge,Kt,Kd,DHI,DNI", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "172,800,30,1,"))
}

// 行範囲の抜き出しのテスト
func Test_ExtractRange(t *testing.T) {
	data := SolarData{
		Yday:   []int{1, 2, 3, 4},
		GHI:    []float64{10, 20, 30, 40},
		Zenith: []float64{80, 70, 60, 50},
		Beam:   []bool{true, true, false, true},
	}

	extracted := data.ExtractRange(1, 3)
	assert.Equal(t, []int{2, 3}, extracted.Yday)
	assert.Equal(t, []float64{20, 30}, extracted.GHI)
	assert.Equal(t, []float64{70, 60}, extracted.Zenith)
	assert.Equal(t, []bool{true, false}, extracted.Beam)

	// 元のデータは変更されない
	assert.Equal(t, 4, data.Len())
}
