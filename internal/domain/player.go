package domain

type PlayerMappingKind string

const PlayerSteam PlayerMappingKind = "steam"

// PlayerMapping links a discord user to their account on the game catalog.
// Steam is the only backing service today; the kind tag keeps the persisted
// form open for others.
type PlayerMapping struct {
	Kind    PlayerMappingKind `json:"kind"`
	Owner   UserID            `json:"owner"`
	SteamID uint64            `json:"steam_id"`
}
