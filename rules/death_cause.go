package rules

const (
	// DeathCauseWallCollision is when a snake runs into the board edge
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSelfCollision is when a snake runs its head into its own body
	DeathCauseSelfCollision = "self-collision"
)
