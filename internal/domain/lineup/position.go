package lineup

type Category string

const (
	Goalkeeper Category = "Goalkeeper"
	Defender   Category = "Defender"
	Midfielder Category = "Midfielder"
	Attacker   Category = "Attacker"
)

// Categories lists the buckets in pitch order, own goal outwards.
var Categories = []Category{Goalkeeper, Defender, Midfielder, Attacker}

var positionTable = map[int64]Category{
	24: Goalkeeper,

	1: Defender, 2: Defender, 3: Defender, 4: Defender,
	14: Defender, 15: Defender, 16: Defender, 25: Defender,
	29: Defender, 30: Defender, 31: Defender, 32: Defender,

	9: Attacker, 10: Attacker, 20: Attacker, 21: Attacker,
	22: Attacker, 23: Attacker, 27: Attacker, 35: Attacker,
	36: Attacker, 37: Attacker, 38: Attacker, 39: Attacker,
	40: Attacker, 41: Attacker, 42: Attacker,
}

// CategoryOf maps a position id to its bucket. Unknown and missing ids are
// placed in midfield; the upstream id space is not fully mapped.
func CategoryOf(positionID *int64) Category {
	if positionID == nil {
		return Midfielder
	}
	if category, ok := positionTable[*positionID]; ok {
		return category
	}
	return Midfielder
}
