package game

import (
	"fmt"

	"github.com/scythe504/partydeck-backend/internal"
)

// Row 0 is the top of the grid; a dropped piece settles in the lowest empty
// cell of its column.

func (r *Reducer) applyDropPiece(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameConnect4, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying {
		return nil
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	col, err := decodeInt(a.Payload, a.Type)
	if err != nil {
		return err
	}
	if col < 0 || col >= internal.Connect4Cols {
		return fmt.Errorf("%s: column %d out of range: %w", a.Type, col, internal.ErrInvalidAction)
	}
	if s.Connect4 == nil {
		return fmt.Errorf("%s: no board: %w", a.Type, internal.ErrWrongPhase)
	}

	color := internal.Connect4Color(s.Players[a.ActorID].Color)
	board := &s.Connect4.Board

	row := dropRow(board, col)
	if row < 0 {
		// Column full. Not an error, the move just doesn't happen.
		return nil
	}
	board[row][col] = color

	switch {
	case connect4Win(board, row, col, color):
		s.MatchStatus = internal.MatchFinished
		s.WinnerID = a.ActorID
		s.TurnPlayerID = ""
		s.Players[a.ActorID].Wins++
		s.AppendHistory(internal.SystemActor, internal.TurnWin,
			fmt.Sprintf("%s wins Connect 4!", playerName(s, a.ActorID)), r.now())
	case boardFull(board):
		s.MatchStatus = internal.MatchFinished
		s.WinnerID = ""
		s.TurnPlayerID = ""
		s.AppendHistory(internal.SystemActor, internal.TurnGameOver, "Draw - Board Full", r.now())
	default:
		s.TurnPlayerID = opponentOf(s, a.ActorID)
	}
	return nil
}

func dropRow(b *[internal.Connect4Rows][internal.Connect4Cols]internal.Connect4Color, col int) int {
	for row := internal.Connect4Rows - 1; row >= 0; row-- {
		if b[row][col] == "" {
			return row
		}
	}
	return -1
}

// connect4Win scans the four axes through the landing cell.
func connect4Win(b *[internal.Connect4Rows][internal.Connect4Cols]internal.Connect4Color, row, col int, color internal.Connect4Color) bool {
	dirs := [4][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal down-right
		{1, -1}, // diagonal down-left
	}
	for _, d := range dirs {
		count := 1
		for _, sign := range []int{1, -1} {
			r, c := row+d[0]*sign, col+d[1]*sign
			for r >= 0 && r < internal.Connect4Rows && c >= 0 && c < internal.Connect4Cols && b[r][c] == color {
				count++
				r += d[0] * sign
				c += d[1] * sign
			}
		}
		if count >= 4 {
			return true
		}
	}
	return false
}

func boardFull(b *[internal.Connect4Rows][internal.Connect4Cols]internal.Connect4Color) bool {
	for c := 0; c < internal.Connect4Cols; c++ {
		if b[0][c] == "" {
			return false
		}
	}
	return true
}
