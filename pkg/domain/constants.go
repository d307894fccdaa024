package domain

// Document keys of a topic source. The vocabulary is Romanian, as in the
// topic files shipped with the game.
const (
	KeyRoot     = "radacina"
	KeyEntity   = "entitate"
	KeyQuestion = "intrebare"
	KeyYes      = "da"
	KeyNo       = "nu"

	KeyEntityName   = "nume"
	KeyEntityDomain = "domeniu"
	KeyEntityKind   = "tip"
)
