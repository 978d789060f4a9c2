package solarsep

import (
	"bytes"
	"strconv"
)

// CSV形式
// 入力列に直散分離結果の列を加えて出力します。
// 中間列(Ge,Kt,Kd)は結果に残されている場合のみ出力します。
func (data *SolarData) ToCSV(buf *bytes.Buffer, res *SeparationResult) {
	buf.WriteString("yday")
	buf.WriteString(",GHI")
	buf.WriteString(",zenith")
	if data.Beam != nil {
		buf.WriteString(",beam")
	}
	if res.Ge != nil {
		buf.WriteString(",Ge")
		buf.WriteString(",Kt")
		buf.WriteString(",Kd")
	}
	buf.WriteString(",DHI")
	buf.WriteString(",DNI")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(data.Yday); i++ {
		buf.WriteString(strconv.Itoa(data.Yday[i]))
		writeFloat(data.GHI[i])
		writeFloat(data.Zenith[i])
		if data.Beam != nil {
			if data.Beam[i] {
				buf.WriteString(",1")
			} else {
				buf.WriteString(",0")
			}
		}
		if res.Ge != nil {
			writeFloat(res.Ge[i])
			writeFloat(res.Kt[i])
			writeFloat(res.Kd[i])
		}
		writeFloat(res.DHI[i])
		writeFloat(res.DNI[i])
		buf.WriteString("\n")
	}
}
