// SolarSep
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/stat"

	"github.com/udawtr/solarsep-go/solarsep"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("SolarSep", "Separates global horizontal irradiance into direct and diffuse components")

	input := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "入力CSVファイルのパス(.gz可)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	method := parser.Selector("m", "method", []string{"Erbs", "Orgill", "Reindl.1", "Reindl.2", "Combined"}, &argparse.Options{
		Default: "Combined",
		Help:    "直散分離の方法"})

	zenithMax := parser.Float("", "zenith_max", &argparse.Options{
		Default: 89.0,
		Help:    "天頂角の上限[°] これを超える行は夜間として扱う"})

	keep := parser.Flag("", "keep_intermediate", &argparse.Options{
		Help: "中間列(Ge,Kt,Kd)も出力する"})

	ydayCol := parser.String("", "yday_col", &argparse.Options{
		Default: "yday",
		Help:    "年間通日の列名"})

	ghiCol := parser.String("", "ghi_col", &argparse.Options{
		Default: "GHI",
		Help:    "水平面全天日射量の列名"})

	zenithCol := parser.String("", "zenith_col", &argparse.Options{
		Default: "zenith",
		Help:    "太陽天頂角の列名"})

	beamCol := parser.String("", "beam_col", &argparse.Options{
		Default: "",
		Help:    "有効フラグの列名(省略可)"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
	}

	// ログレベル設定
	logger := logging.GetLogger("solarsep")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// 直散分離の方法
	m, err := solarsep.ParseSeparationMethod(*method)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 入力CSVの読込
	logger.Infof("入力CSV読込: %s", *input)
	data, err := solarsep.LoadSolarCSV(*input, solarsep.ColumnConfig{
		Yday:   *ydayCol,
		GHI:    *ghiCol,
		Zenith: *zenithCol,
		Beam:   *beamCol,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// 直散分離
	res, err := solarsep.Decompose(data, m, *zenithMax, *keep)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Infof("平均DHI: %f W/m2", stat.Mean(res.DHI, nil))
	logger.Infof("平均DNI: %f W/m2", stat.Mean(res.DNI, nil))

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	data.ToCSV(buf, res)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}

	logger.Infof("計算が終了しました")
}
