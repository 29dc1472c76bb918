package signum

import "strings"

// Level is a Signum provenance level code.
type Level string

const (
	// LevelHuman marks content produced entirely by a human.
	LevelHuman Level = "H"

	// LevelHumanAIEnhanced marks human content with AI enhancement.
	LevelHumanAIEnhanced Level = "H-AE"

	// LevelAIHumanReviewed marks AI-assisted content reviewed by a human.
	LevelAIHumanReviewed Level = "AI-HR"

	// LevelAIHumanPrompted marks AI-generated content prompted by a human.
	LevelAIHumanPrompted Level = "AI-HP"

	// LevelFullyAutomated marks content produced without human involvement.
	LevelFullyAutomated Level = "AI-FA"
)

// levels lists every known level in rank order.
var levels = [...]Level{
	LevelHuman,
	LevelHumanAIEnhanced,
	LevelAIHumanReviewed,
	LevelAIHumanPrompted,
	LevelFullyAutomated,
}

var levelNames = map[Level]string{
	LevelHuman:           "Level 0: Human",
	LevelHumanAIEnhanced: "Level 1: Human, AI-Enhanced",
	LevelAIHumanReviewed: "Level 2: AI-Assisted, Human-Reviewed",
	LevelAIHumanPrompted: "Level 3: AI-Generated, Human-Prompted",
	LevelFullyAutomated:  "Level 4: Fully Automated AI",
}

// Levels returns all known levels ordered by rank.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// ParseLevel converts a string to a Level.
// The second return value is false when the code is not in the vocabulary.
// Codes are case sensitive.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, l.IsValid()
}

// IsValid reports whether the level is one of the five known codes.
func (l Level) IsValid() bool {
	_, ok := levelNames[l]
	return ok
}

// Name returns the human-readable level name.
func (l Level) Name() (string, bool) {
	name, ok := levelNames[l]
	return name, ok
}

// Rank returns the level position from 0 (human) to 4 (fully automated),
// or -1 for an unknown level.
func (l Level) Rank() int {
	for i, known := range levels {
		if known == l {
			return i
		}
	}
	return -1
}

// ClassName returns the level-specific CSS class "<prefix>-<code>" with the code
// lowercased. Hyphens in the code are kept.
func (l Level) ClassName(prefix string) string {
	return prefix + "-" + strings.ToLower(string(l))
}

// String returns the level code.
func (l Level) String() string {
	return string(l)
}
