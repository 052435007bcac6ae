package catalog

import "fmt"

const (
	MinDan = 1
	MaxDan = 9
)

// Phrase is the canonical spoken reading of one kuku entry.
type Phrase struct {
	Dan        int
	Multiplier int
	Reading    string
	Result     int
}

// phrases is indexed by [dan-1][multiplier-1].
var phrases = [MaxDan][MaxDan]Phrase{
	{
		{1, 1, "いんいち が いち", 1},
		{1, 2, "いんに が に", 2},
		{1, 3, "いんさん が さん", 3},
		{1, 4, "いんし が し", 4},
		{1, 5, "いんご が ご", 5},
		{1, 6, "いんろく が ろく", 6},
		{1, 7, "いんしち が しち", 7},
		{1, 8, "いんはち が はち", 8},
		{1, 9, "いんく が く", 9},
	},
	{
		{2, 1, "にいち が に", 2},
		{2, 2, "ににん が し", 4},
		{2, 3, "にさん が ろく", 6},
		{2, 4, "にし が はち", 8},
		{2, 5, "にご じゅう", 10},
		{2, 6, "にろく じゅうに", 12},
		{2, 7, "にしち じゅうし", 14},
		{2, 8, "にはち じゅうろく", 16},
		{2, 9, "にく じゅうはち", 18},
	},
	{
		{3, 1, "さんいち が さん", 3},
		{3, 2, "さんに が ろく", 6},
		{3, 3, "さざん が きゅう", 9},
		{3, 4, "さんし じゅうに", 12},
		{3, 5, "さんご じゅうご", 15},
		{3, 6, "さぶろく じゅうはち", 18},
		{3, 7, "さんしち にじゅういち", 21},
		{3, 8, "さんぱ にじゅうし", 24},
		{3, 9, "さんく にじゅうしち", 27},
	},
	{
		{4, 1, "しいち が し", 4},
		{4, 2, "しに が はち", 8},
		{4, 3, "しさん じゅうに", 12},
		{4, 4, "しし じゅうろく", 16},
		{4, 5, "しご にじゅう", 20},
		{4, 6, "しろく にじゅうし", 24},
		{4, 7, "しちし にじゅうはち", 28},
		{4, 8, "しちは さんじゅうに", 32},
		{4, 9, "しく さんじゅうろく", 36},
	},
	{
		{5, 1, "ごいち が ご", 5},
		{5, 2, "ごに じゅう", 10},
		{5, 3, "ごさん じゅうご", 15},
		{5, 4, "ごし にじゅう", 20},
		{5, 5, "ごご にじゅうご", 25},
		{5, 6, "ごろく さんじゅう", 30},
		{5, 7, "ごしち さんじゅうご", 35},
		{5, 8, "ごは しじゅう", 40},
		{5, 9, "ごっく しじゅうご", 45},
	},
	{
		{6, 1, "ろくいち が ろく", 6},
		{6, 2, "ろくに じゅうに", 12},
		{6, 3, "ろくさん じゅうはち", 18},
		{6, 4, "ろくし にじゅうし", 24},
		{6, 5, "ろくご さんじゅう", 30},
		{6, 6, "ろくろく さんじゅうろく", 36},
		{6, 7, "ろくしち しじゅうに", 42},
		{6, 8, "ろくは しじゅうはち", 48},
		{6, 9, "ろっく ごじゅうし", 54},
	},
	{
		{7, 1, "しちいち が しち", 7},
		{7, 2, "しちに じゅうし", 14},
		{7, 3, "しちさん にじゅういち", 21},
		{7, 4, "しちし にじゅうはち", 28},
		{7, 5, "しちご さんじゅうご", 35},
		{7, 6, "しちろく しじゅうに", 42},
		{7, 7, "しちしち しじゅうく", 49},
		{7, 8, "しちは ごじゅうろく", 56},
		{7, 9, "しちく ろくじゅうさん", 63},
	},
	{
		{8, 1, "はちいち が はち", 8},
		{8, 2, "はちに じゅうろく", 16},
		{8, 3, "はちさん にじゅうし", 24},
		{8, 4, "はちし さんじゅうに", 32},
		{8, 5, "はちご しじゅう", 40},
		{8, 6, "はちろく しじゅうはち", 48},
		{8, 7, "はちしち ごじゅうろく", 56},
		{8, 8, "はっぱ ろくじゅうし", 64},
		{8, 9, "はっく しちじゅうに", 72},
	},
	{
		{9, 1, "くいち が く", 9},
		{9, 2, "くに じゅうはち", 18},
		{9, 3, "くさん にじゅうしち", 27},
		{9, 4, "くし さんじゅうろく", 36},
		{9, 5, "くご しじゅうご", 45},
		{9, 6, "くろく ごじゅうし", 54},
		{9, 7, "くしち ろくじゅうさん", 63},
		{9, 8, "くは しちじゅうに", 72},
		{9, 9, "くく はちじゅういち", 81},
	},
}

var danNames = [MaxDan]string{"いち", "に", "さん", "し", "ご", "ろく", "しち", "はち", "く"}

// ValidDan reports whether dan is a row of the table.
func ValidDan(dan int) bool {
	return dan >= MinDan && dan <= MaxDan
}

// LookupPhrase returns the entry for (dan, multiplier).
func LookupPhrase(dan, multiplier int) (Phrase, bool) {
	if !ValidDan(dan) || !ValidDan(multiplier) {
		return Phrase{}, false
	}
	return phrases[dan-1][multiplier-1], true
}

// PhrasesForDan returns the dan's entries ordered by multiplier.
// Returns nil for an out-of-range dan.
func PhrasesForDan(dan int) []Phrase {
	if !ValidDan(dan) {
		return nil
	}
	out := make([]Phrase, MaxDan)
	copy(out, phrases[dan-1][:])
	return out
}

// DanName returns the spoken name of a dan, or its digits when out of range.
func DanName(dan int) string {
	if !ValidDan(dan) {
		return fmt.Sprintf("%d", dan)
	}
	return danNames[dan-1]
}

// IntroText is the line read before the first entry of a dan.
func IntroText(dan int) string {
	return DanName(dan) + "のだん、いくよ"
}
