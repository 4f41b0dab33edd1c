package frame

// BandTable holds the scalefactor band start indices for one sampling
// rate. Long has one extra entry closing the last band at 576, Short
// closes at 192 (per window).
type BandTable struct {
	Long  [BandsLong]int
	Short [BandsShort + 1]int
}

var bands44100 = BandTable{
	Long: [BandsLong]int{
		0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110,
		134, 162, 196, 238, 288, 342, 418, 576,
	},
	Short: [BandsShort + 1]int{
		0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192,
	},
}

var bands48000 = BandTable{
	Long: [BandsLong]int{
		0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106,
		128, 156, 190, 230, 276, 330, 384, 576,
	},
	Short: [BandsShort + 1]int{
		0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192,
	},
}

var bands32000 = BandTable{
	Long: [BandsLong]int{
		0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126,
		156, 194, 240, 296, 364, 448, 550, 576,
	},
	Short: [BandsShort + 1]int{
		0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192,
	},
}

// Bands returns the scalefactor band table for the given sampling rate.
func Bands(sampleRate int) *BandTable {
	switch sampleRate {
	case 48000:
		return &bands48000
	case 32000:
		return &bands32000
	default:
		return &bands44100
	}
}
