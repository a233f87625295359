package core

// Request types

type NewGameRequest struct {
	Size  int     `json:"size" validate:"required,min=2,max=99"`
	Mines int     `json:"mines" validate:"required,min=1"`
	Seed  *uint64 `json:"seed,omitempty"` // nil draws a random seed
}

type GamesQuery struct {
	State string `query:"state" validate:"omitempty,oneof=ongoing won lost"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

// Response types

type GameResponse struct {
	GameID       string       `json:"gameId"`
	Size         int          `json:"size"`
	Mines        int          `json:"mines"`
	Seed         uint64       `json:"seed"`
	State        string       `json:"state"`
	StartTimeUTC string       `json:"startTime"`
	EndTimeUTC   string       `json:"endTime,omitempty"`
	Reveals      []RevealInfo `json:"reveals,omitempty"`
}

type RevealInfo struct {
	Number        int    `json:"number"`
	Row           int    `json:"row"`
	Col           int    `json:"col"`
	Outcome       string `json:"outcome"` // "safe" or "detonated"
	CellsRevealed int    `json:"cellsRevealed"`
}

type GamesResponse struct {
	Games []GameResponse `json:"games"`
	Count int            `json:"count"`
}

type BoardResponse struct {
	GameID string `json:"gameId"`
	State  string `json:"state"`
	Board  string `json:"board"` // ASCII representation
}

type StatsResponse struct {
	Played  int     `json:"played"`
	Won     int     `json:"won"`
	Lost    int     `json:"lost"`
	Ongoing int     `json:"ongoing"`
	WinRate float64 `json:"winRate"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
