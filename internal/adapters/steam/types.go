package steam

type appListDTO struct {
	AppList struct {
		Apps []struct {
			AppID uint32 `json:"appid"`
			Name  string `json:"name"`
		} `json:"apps"`
	} `json:"applist"`
}

type ownedGamesDTO struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID           uint32 `json:"appid"`
			Name            string `json:"name"`
			PlaytimeForever int    `json:"playtime_forever"`
			PlaytimeWindows int    `json:"playtime_windows_forever"`
			PlaytimeMac     int    `json:"playtime_mac_forever"`
			PlaytimeLinux   int    `json:"playtime_linux_forever"`
		} `json:"games"`
	} `json:"response"`
}

type vanityDTO struct {
	Response struct {
		Success int    `json:"success"` // 1 = match
		SteamID string `json:"steamid"`
	} `json:"response"`
}
