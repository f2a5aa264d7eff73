package codec

import (
	"testing"
	"time"

	"github.com/hupe1980/tablefilter/dataset"
)

type benchRecord struct {
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
	Region  string  `json:"region"`
	Active  bool     `json:"active"`
	Tags    []string `json:"tags"`
	Created string   `json:"created"`
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Record(b *testing.B) {
	rec := benchRecord{
		Status:  "Active",
		Amount:  1234.5,
		Region:  "US",
		Active:  true,
		Tags:    []string{"priority", "bulk", "reviewed"},
		Created: "2024-01-15",
	}

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, rec) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, rec) })
}

func BenchmarkCodec_Unmarshal_Record(b *testing.B) {
	rec := benchRecord{
		Status:  "Active",
		Amount:  1234.5,
		Region:  "US",
		Active:  true,
		Tags:    []string{"priority", "bulk", "reviewed"},
		Created: "2024-01-15",
	}

	jsonData := MustMarshal(JSON{}, rec)

	b.Run("stdlib", func(b *testing.B) {
		var sink benchRecord
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchRecord
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}

func BenchmarkCodec_Marshal_Row(b *testing.B) {
	row := dataset.Row{
		"Status":  dataset.Text("Active"),
		"Amount":  dataset.Float(1234.5),
		"Count":   dataset.Int(42),
		"Created": dataset.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		"Note":    dataset.Null(),
	}

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, row) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, row) })
}

func BenchmarkCodec_Unmarshal_Row(b *testing.B) {
	row := dataset.Row{
		"Status":  dataset.Text("Active"),
		"Amount":  dataset.Float(1234.5),
		"Count":   dataset.Int(42),
		"Created": dataset.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		"Note":    dataset.Null(),
	}

	jsonData := MustMarshal(JSON{}, row)

	b.Run("stdlib", func(b *testing.B) {
		var sink dataset.Row
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink dataset.Row
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}
