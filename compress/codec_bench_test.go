package compress

import (
	"fmt"
	"testing"
)

func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
	case "compressible":
		pattern := []byte("instruction delta literal copy skip set-delta set-neg-delta")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "semi_compressible":
		for i := range data {
			if i%100 < 50 {
				data[i] = byte(i % 256)
			} else {
				data[i] = byte((i*7 + i*i) % 256)
			}
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func BenchmarkAllCodecsCompress(b *testing.B) {
	sizes := []int{1024, 16384, 65536}
	compressibilities := []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					testName := fmt.Sprintf("%dKB_%s", size/1024, comp)
					b.Run(testName, func(b *testing.B) {
						data := generateBenchmarkData(size, comp)

						b.ResetTimer()
						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for i := 0; i < b.N; i++ {
							if _, err := codec.Compress(data); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkAllCodecsDecompress(b *testing.B) {
	sizes := []int{1024, 16384, 65536}
	compressibilities := []string{"highly_compressible", "compressible", "semi_compressible", "incompressible"}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					testName := fmt.Sprintf("%dKB_%s", size/1024, comp)
					b.Run(testName, func(b *testing.B) {
						data := generateBenchmarkData(size, comp)

						compressed, err := codec.Compress(data)
						if err != nil {
							b.Fatal(err)
						}

						b.ResetTimer()
						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for i := 0; i < b.N; i++ {
							if _, err := codec.Decompress(compressed); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkZstdCompress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewZstdCompressor()

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Compress(data)
			}
		})
	}
}

func BenchmarkZstdDecompress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewZstdCompressor()
		compressed, _ := compressor.Compress(data)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(compressed)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Decompress(compressed)
			}
		})
	}
}

func BenchmarkLZ4Compress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewLZ4Compressor()

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Compress(data)
			}
		})
	}
}

func BenchmarkLZ4Decompress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewLZ4Compressor()
		compressed, _ := compressor.Compress(data)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(compressed)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Decompress(compressed)
			}
		})
	}
}

func BenchmarkS2Compress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewS2Compressor()

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Compress(data)
			}
		})
	}
}

func BenchmarkS2Decompress(b *testing.B) {
	sizes := []int{1 * 1024, 8 * 1024, 64 * 1024, 512 * 1024}

	for _, size := range sizes {
		data := generateBenchmarkData(size, "compressible")
		compressor := NewS2Compressor()
		compressed, _ := compressor.Compress(data)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(compressed)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = compressor.Decompress(compressed)
			}
		})
	}
}
