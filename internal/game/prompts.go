package game

var prompts2 = []string{
	"TH", "CH", "SH", "PH", "WH", "CK", "NG", "QU",
	"EI", "IE", "EA", "OU", "AI", "OO", "EE",
	"TR", "PR", "CR", "BR", "GR", "FR", "DR",
	"ST", "SP", "SC", "SK", "SL", "SM", "SN", "SW",
}

var prompts3 = []string{
	"ING", "TIO", "THE", "AND", "ENT", "ION", "TER",
	"FOR", "WAS", "NCE", "EDT", "TIS", "OFT", "STH",
	"MEN", "ALL", "HER", "ITH", "HIS", "OUR", "ERE",
	"PRO", "COM", "PER", "INT", "EST", "STA", "CTI",
	"OTH", "ERS", "ITY", "RAT", "VER", "ATE", "OUN",
	"ARE", "EVE", "OUT", "ITE", "INE", "ANI", "INI",
}

// randomPrompt picks a 2-letter or 3-letter fragment with equal odds.
func randomPrompt(rng Rand) string {
	if rng.Float64() < 0.5 {
		return prompts2[rng.Intn(len(prompts2))]
	}
	return prompts3[rng.Intn(len(prompts3))]
}
