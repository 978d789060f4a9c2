package solarsep

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// 入力CSVの列名の指定
type ColumnConfig struct {
	Yday   string //年間通日の列名
	GHI    string //水平面全天日射量の列名
	Zenith string //太陽天頂角の列名
	Beam   string //有効フラグの列名(空文字列の場合は使用しない)
}

// 既定の列名
func DefaultColumns() ColumnConfig {
	return ColumnConfig{Yday: "yday", GHI: "GHI", Zenith: "zenith"}
}

// """CSVファイルから直散分離の入力データを読み込みます。
// 拡張子が .gz の場合はgzip圧縮されたCSVとして読み込みます。
// Args:
//
//	path(string): 入力CSVファイルのパス
//	cols(ColumnConfig): 列名の指定
//
// Returns:
//
//	*SolarData: 読み込んだ入力データ
//
// """
func LoadSolarCSV(path string, cols ColumnConfig) (*SolarData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	return ReadSolarCSV(r, cols)
}

// CSVから直散分離の入力データを読み込みます。
// 列名はヘッダ行に対して一度だけ解決し、必要な列が存在しない場合は
// 行の読み込みを行わずに ErrMissingColumn を返します。
func ReadSolarCSV(r io.Reader, cols ColumnConfig) (*SolarData, error) {
	reader := csv.NewReader(r)

	// Read the header
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	index := func(name string) int {
		for j := 0; j < len(header); j++ {
			if header[j] == name {
				return j
			}
		}
		return -1
	}

	// 列名の解決
	i_yday := index(cols.Yday)
	if i_yday < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.Yday)
	}
	i_ghi := index(cols.GHI)
	if i_ghi < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.GHI)
	}
	i_zenith := index(cols.Zenith)
	if i_zenith < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.Zenith)
	}
	i_beam := -1
	if cols.Beam != "" {
		i_beam = index(cols.Beam)
		if i_beam < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, cols.Beam)
		}
	}

	// Read all records at once
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	data := SolarData{
		Yday:   make([]int, len(records)),
		GHI:    make([]float64, len(records)),
		Zenith: make([]float64, len(records)),
	}
	if i_beam >= 0 {
		data.Beam = make([]bool, len(records))
	}

	for i, record := range records {
		data.Yday[i], err = strconv.Atoi(strings.TrimSpace(record[i_yday]))
		if err != nil {
			return nil, err
		}
		data.GHI[i], err = strconv.ParseFloat(strings.TrimSpace(record[i_ghi]), 64)
		if err != nil {
			return nil, err
		}
		data.Zenith[i], err = strconv.ParseFloat(strings.TrimSpace(record[i_zenith]), 64)
		if err != nil {
			return nil, err
		}
		if i_beam >= 0 {
			data.Beam[i], err = parse_beam(record[i_beam])
			if err != nil {
				return nil, err
			}
		}
	}

	return &data, nil
}

// 有効フラグの値(0/1またはtrue/false)の解釈
func parse_beam(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t":
		return true, nil
	case "0", "false", "f":
		return false, nil
	}
	return false, fmt.Errorf("有効フラグを解釈できません: %s", s)
}
