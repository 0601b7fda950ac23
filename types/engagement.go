package types

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type FavoriteResponse struct {
	Favorited bool   `json:"favorited"`
	Count     int64  `json:"count"`
	Message   string `json:"message"`
}

type RateRequest struct {
	Score int `json:"score" form:"score"`
}

type RateResponse struct {
	Success bool    `json:"success"`
	Score   int     `json:"score"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
