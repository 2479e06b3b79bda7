package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scythe504/partydeck-backend/internal"
)

// Line ids are "h-r-c" for horizontals and "v-r-c" for verticals on a 5x5
// box grid. Box "r-c" is bounded by h-r-c, h-(r+1)-c, v-r-c and v-r-(c+1).

func boxKey(r, c int) string {
	return fmt.Sprintf("%d-%d", r, c)
}

func parseLine(id string) (dir string, row, col int, ok bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 || (parts[0] != "h" && parts[0] != "v") {
		return "", 0, 0, false
	}
	row, err1 := strconv.Atoi(parts[1])
	col, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return "", 0, 0, false
	}
	return parts[0], row, col, true
}

func boxSides(r, c int) [4]string {
	return [4]string{
		fmt.Sprintf("h-%d-%d", r, c),
		fmt.Sprintf("h-%d-%d", r+1, c),
		fmt.Sprintf("v-%d-%d", r, c),
		fmt.Sprintf("v-%d-%d", r, c+1),
	}
}

func boxComplete(r, c int, lines map[string]bool) bool {
	for _, side := range boxSides(r, c) {
		if !lines[side] {
			return false
		}
	}
	return true
}

func missingSide(r, c int, lines map[string]bool) (string, bool) {
	var missing []string
	for _, side := range boxSides(r, c) {
		if !lines[side] {
			missing = append(missing, side)
		}
	}
	if len(missing) == 1 {
		return missing[0], true
	}
	return "", false
}

// adjacentBoxes gives the one or two boxes a line can border.
func adjacentBoxes(dir string, row, col int) [][2]int {
	if dir == "h" {
		return [][2]int{{row, col}, {row - 1, col}}
	}
	return [][2]int{{row, col}, {row, col - 1}}
}

func (r *Reducer) applyDrawLine(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameDotsAndBoxes, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying || s.Boxes == nil {
		return nil
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	lineID, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}
	if _, _, _, ok := parseLine(lineID); !ok {
		return fmt.Errorf("%s: bad line id %q: %w", a.Type, lineID, internal.ErrInvalidAction)
	}

	bx := s.Boxes
	drawn := make(map[string]bool, len(bx.Lines))
	for _, l := range bx.Lines {
		drawn[l] = true
	}
	if drawn[lineID] {
		return fmt.Errorf("%s: line already drawn: %w", a.Type, internal.ErrInvalidAction)
	}

	// Worklist cascade: completing a box may hand out the fourth side of a
	// neighbor, which is then drawn and checked in turn. Never recursive.
	worklist := []string{lineID}
	claimed := 0
	for len(worklist) > 0 {
		line := worklist[0]
		worklist = worklist[1:]
		if drawn[line] {
			continue
		}
		drawn[line] = true
		bx.Lines = append(bx.Lines, line)

		dir, row, col, _ := parseLine(line)
		madeBox := false
		for _, box := range adjacentBoxes(dir, row, col) {
			br, bc := box[0], box[1]
			if br < 0 || bc < 0 || br >= internal.BoxGridSize || bc >= internal.BoxGridSize {
				continue
			}
			if bx.Boxes[boxKey(br, bc)] != "" {
				continue
			}
			if boxComplete(br, bc, drawn) {
				bx.Boxes[boxKey(br, bc)] = a.ActorID
				claimed++
				madeBox = true
			}
		}
		if madeBox {
			for _, box := range adjacentBoxes(dir, row, col) {
				br, bc := box[0], box[1]
				if br < 0 || bc < 0 || br >= internal.BoxGridSize || bc >= internal.BoxGridSize {
					continue
				}
				if bx.Boxes[boxKey(br, bc)] != "" {
					continue
				}
				if m, ok := missingSide(br, bc, drawn); ok && !drawn[m] && !contains(worklist, m) {
					worklist = append(worklist, m)
				}
			}
		}
	}

	if claimed > 0 {
		chain := ""
		if claimed > 1 {
			chain = " (Chain!)"
		}
		s.AppendHistory(internal.SystemActor, internal.TurnInfo,
			fmt.Sprintf("%s claimed %d box(es)%s!", playerName(s, a.ActorID), claimed, chain), r.now())
	}

	// Turn always passes, claimed boxes or not.
	s.TurnPlayerID = nextInRotation(activeIDs(s), a.ActorID)

	if len(bx.Boxes) == internal.TotalBoxes {
		s.MatchStatus = internal.MatchFinished
		s.TurnPlayerID = ""

		counts := map[string]int{}
		for _, owner := range bx.Boxes {
			counts[owner]++
		}
		ids := activeIDs(s)
		best, bestCount, tie := "", -1, false
		for _, id := range ids {
			switch {
			case counts[id] > bestCount:
				best, bestCount, tie = id, counts[id], false
			case counts[id] == bestCount:
				tie = true
			}
		}

		if tie || best == "" {
			s.WinnerID = ""
			s.AppendHistory(internal.SystemActor, internal.TurnWin,
				fmt.Sprintf("Draw! (%d-%d)", bestCount, bestCount), r.now())
		} else {
			s.WinnerID = best
			s.Players[best].Wins++
			loserCount := internal.TotalBoxes - bestCount
			s.AppendHistory(internal.SystemActor, internal.TurnWin,
				fmt.Sprintf("%s wins Dots & Boxes (%d-%d)!", playerName(s, best), bestCount, loserCount), r.now())
		}
	}
	return nil
}
