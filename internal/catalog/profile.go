package catalog

// ProfileID identifies a difficulty profile ("step" in the trainer menu).
type ProfileID string

const (
	StepA ProfileID = "A"
	StepB ProfileID = "B"
	StepC ProfileID = "C"
	StepD ProfileID = "D"
)

// Profile is an immutable difficulty profile for the concept trainer.
// Factor ranges are inclusive.
type Profile struct {
	ID    ProfileID
	Label string

	// Narration labels used to phrase "b containers of a items" problems.
	ItemLabel        string
	ItemEmoji        string
	ContainerLabel   string
	ContainerCounter string

	AMin, AMax int
	BMin, BMax int

	// Count is the target number of questions per session.
	Count int
}

// DistinctPairs returns how many distinct (a, b) pairs the ranges can supply.
func (p Profile) DistinctPairs() int {
	if p.AMax < p.AMin || p.BMax < p.BMin {
		return 0
	}
	return (p.AMax - p.AMin + 1) * (p.BMax - p.BMin + 1)
}

var profiles = [...]Profile{
	{
		ID:               StepA,
		Label:            "ステップA：あめ（ふくろ）",
		ItemLabel:        "あめ",
		ItemEmoji:        "🍬",
		ContainerLabel:   "ふくろ",
		ContainerCounter: "ふくろ",
		AMin:             2,
		AMax:             4,
		BMin:             2,
		BMax:             4,
		Count:            8,
	},
	{
		ID:               StepB,
		Label:            "ステップB：いちご（おさら）",
		ItemLabel:        "いちご",
		ItemEmoji:        "🍓",
		ContainerLabel:   "おさら",
		ContainerCounter: "まい",
		AMin:             2,
		AMax:             5,
		BMin:             2,
		BMax:             6,
		Count:            8,
	},
	{
		ID:               StepC,
		Label:            "ステップC：6の段以上",
		ItemLabel:        "クッキー",
		ItemEmoji:        "🍪",
		ContainerLabel:   "はこ",
		ContainerCounter: "こ",
		AMin:             6,
		AMax:             9,
		BMin:             2,
		BMax:             5,
		Count:            8,
	},
	{
		ID:               StepD,
		Label:            "ステップD：6の段以上",
		ItemLabel:        "ボール",
		ItemEmoji:        "⚽",
		ContainerLabel:   "かご",
		ContainerCounter: "こ",
		AMin:             6,
		AMax:             9,
		BMin:             6,
		BMax:             9,
		Count:            8,
	},
}

var profileIndex = func() map[ProfileID]int {
	m := make(map[ProfileID]int, len(profiles))
	for i, p := range profiles {
		m[p.ID] = i
	}
	return m
}()

// Profiles returns the catalog in menu order. The slice is a copy.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles[:])
	return out
}

// LookupProfile returns the profile with the given ID.
func LookupProfile(id ProfileID) (Profile, bool) {
	i, ok := profileIndex[id]
	if !ok {
		return Profile{}, false
	}
	return profiles[i], true
}

// ProfileOrDefault returns the profile with the given ID, or the first
// profile when the ID is unknown.
func ProfileOrDefault(id ProfileID) Profile {
	if p, ok := LookupProfile(id); ok {
		return p
	}
	return profiles[0]
}
