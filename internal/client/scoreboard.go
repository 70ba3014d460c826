package client

import (
	"strconv"

	"pong/internal/game"
)

const (
	LeftScoreID  = "left-score"
	RightScoreID = "right-score"
)

// ScoreBoard holds the two score labels. It is a game.ScoreSink.
type ScoreBoard struct {
	text map[string]string
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		text: map[string]string{
			LeftScoreID:  "0",
			RightScoreID: "0",
		},
	}
}

func (b *ScoreBoard) SetScore(side game.Side, score int) {
	b.text[labelID(side)] = strconv.Itoa(score)
}

// Sync overwrites both labels, for hosts that only see whole snapshots.
func (b *ScoreBoard) Sync(s game.Score) {
	b.SetScore(game.Left, s.Left)
	b.SetScore(game.Right, s.Right)
}

func (b *ScoreBoard) Text(id string) string {
	return b.text[id]
}

func labelID(side game.Side) string {
	if side == game.Left {
		return LeftScoreID
	}
	return RightScoreID
}
