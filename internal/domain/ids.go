package domain

import "strconv"

// GuildID is the isolation boundary for all bot state. No data is ever
// visible across guilds.
type GuildID uint64

// UserID identifies the discord user issuing a command.
type UserID uint64

func ParseGuildID(s string) (GuildID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return GuildID(v), err
}

func ParseUserID(s string) (UserID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return UserID(v), err
}
